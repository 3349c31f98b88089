package snapshotExporter

import (
	"context"
	"encoding/json"
	"github.com/google/uuid"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/exception"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/model"
	"go.uber.org/zap"
	"time"
)

// BusinessCardScanner is the slice of the BusinessCard DAO the exporter
// consumes.
type BusinessCardScanner interface {
	ScanPublicProjection(ctx context.Context) ([]model.BusinessCardSnapshot, error)
}

type SnapshotPublisher interface {
	PutPublicJSON(ctx context.Context, key string, body []byte) error
}

type ExportSummary struct {
	RunId       string `json:"runId"`
	Count       int    `json:"count"`
	GeneratedAt string `json:"generatedAt"`
	ObjectKey   string `json:"objectKey"`
	SizeBytes   int    `json:"sizeBytes"`
}

type Exporter struct {
	scanner   BusinessCardScanner
	publisher SnapshotPublisher
	log       *zap.SugaredLogger
}

func NewExporter(scanner BusinessCardScanner, publisher SnapshotPublisher, logger *zap.SugaredLogger) *Exporter {
	return &Exporter{
		scanner:   scanner,
		publisher: publisher,
		log:       logger,
	}
}

// Run produces and publishes one snapshot. Any failure aborts the run with
// nothing published; stale clients keep the previous snapshot until the next
// scheduled invocation succeeds. An empty directory publishes an empty
// document, not an error.
func (e *Exporter) Run(ctx context.Context) (ExportSummary, error) {
	runId := uuid.New().String()

	cards, err := e.scanner.ScanPublicProjection(ctx)
	if err != nil {
		if _, ok := err.(*exception.StoreTraversalException); ok {
			return ExportSummary{}, err
		}
		return ExportSummary{}, exception.NewStoreTraversalException("scanning business cards for snapshot", err)
	}
	if cards == nil {
		cards = []model.BusinessCardSnapshot{}
	}
	e.log.Infof("Snapshot run %s fetched %d businesses", runId, len(cards))

	generatedAt := time.Now().UTC().Format(time.RFC3339)
	document := model.SnapshotDocument{
		Meta: model.SnapshotMeta{
			GeneratedAt: generatedAt,
			Count:       len(cards),
			Version:     model.SnapshotVersion,
		},
		Data: cards,
	}

	body, err := json.Marshal(document)
	if err != nil {
		return ExportSummary{}, exception.NewSerializationException("marshalling snapshot document", err)
	}

	err = e.publisher.PutPublicJSON(ctx, model.SnapshotObjectKey, body)
	if err != nil {
		return ExportSummary{}, exception.NewPublishException("publishing snapshot to "+model.SnapshotObjectKey, err)
	}

	return ExportSummary{
		RunId:       runId,
		Count:       len(cards),
		GeneratedAt: generatedAt,
		ObjectKey:   model.SnapshotObjectKey,
		SizeBytes:   len(body),
	}, nil
}
