package ddbDao

import (
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/util"
	"os"
)

type Table int

const (
	TableBusinessCard Table = iota
	TableReview
	TableSavedContact
)

func (t Table) String() string {
	return []string{"BusinessCard", "Review", "SavedContact"}[t]
}

// Name returns the deployed table name. The hosting environment injects
// generated table names through env vars; the bare model name is the
// local-stage fallback.
func (t Table) Name() string {
	envKey := []string{
		util.BusinessCardTableNameEnvKey,
		util.ReviewTableNameEnvKey,
		util.SavedContactTableNameEnvKey,
	}[t]
	if name := os.Getenv(envKey); name != "" {
		return name
	}
	return t.String()
}
