package yelpUtil

import (
	"testing"
	"time"
)

func TestCreatedTime(t *testing.T) {
	tests := []struct {
		name        string
		timeCreated string
		expected    time.Time
		expectError bool
	}{
		{
			name:        "fusion layout",
			timeCreated: "2023-11-14 18:30:00",
			expected:    time.Date(2023, 11, 14, 18, 30, 0, 0, time.UTC),
		},
		{
			name:        "rfc3339",
			timeCreated: "2023-11-14T18:30:00Z",
			expected:    time.Date(2023, 11, 14, 18, 30, 0, 0, time.UTC),
		},
		{
			name:        "garbage",
			timeCreated: "yesterday",
			expectError: true,
		},
		{
			name:        "empty",
			timeCreated: "",
			expectError: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			parsed, err := Review{TimeCreated: test.timeCreated}.CreatedTime()
			if test.expectError {
				if err == nil {
					t.Errorf("Expected error for '%s', but got nil", test.timeCreated)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, but got %v", err)
			}
			if !parsed.Equal(test.expected) {
				t.Errorf("Expected %v, but got %v", test.expected, parsed)
			}
		})
	}
}
