package util

import (
	"strings"
)

func IsEmptyString(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}

func IsEmptyStringPtr(s *string) bool {
	return s == nil || len(strings.TrimSpace(*s)) == 0
}

func StringInSlice(str string, list []string) bool {
	for _, v := range list {
		if v == str {
			return true
		}
	}
	return false
}

// TitleizePlaceType converts a Google place type such as "hardware_store"
// into a directory category such as "Hardware store".
func TitleizePlaceType(placeType string) string {
	if IsEmptyString(placeType) {
		return "Business"
	}

	withSpaces := strings.ReplaceAll(placeType, "_", " ")
	return strings.ToUpper(withSpaces[:1]) + withSpaces[1:]
}
