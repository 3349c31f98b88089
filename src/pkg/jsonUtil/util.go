package jsonUtil

import (
	"encoding/json"
	"errors"
	"strings"
)

func AnyToJson(obj any) string {
	return string(AnyToJsonObject(obj))
}

func AnyToJsonObject(obj any) []byte {
	jsonData, _ := json.Marshal(obj)
	return jsonData
}

// ExtractJsonObject pulls the first top-level JSON object out of free-form
// text. Model completions sometimes wrap their JSON in markdown fences or
// conversational filler.
func ExtractJsonObject(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", errors.New("no JSON object found in text")
	}

	candidate := text[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return "", errors.New("extracted text is not valid JSON")
	}
	return candidate, nil
}
