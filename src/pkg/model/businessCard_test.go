package model

import "testing"

func TestBusinessKeyString(t *testing.T) {
	key := BusinessKey{Pk: "IN#KA#BLR", Sk: "BIZ#rk-plumbing"}

	expected := "IN#KA#BLR#BIZ#rk-plumbing"
	if got := key.String(); got != expected {
		t.Errorf("Expected %s, but got %s", expected, got)
	}
}

func TestValidateCounterName(t *testing.T) {
	tests := []struct {
		name        string
		counter     string
		expectError bool
	}{
		{"view count", "viewCount", false},
		{"save count", "saveCount", false},
		{"catalogue view count", "catalogueViewCount", false},
		{"unknown counter", "shareCount", true},
		{"non-counter attribute", "businessName", true},
		{"empty", "", true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateCounterName(test.counter)
			if test.expectError && err == nil {
				t.Errorf("Expected error for counter '%s', but got nil", test.counter)
			}
			if !test.expectError && err != nil {
				t.Errorf("Expected no error for counter '%s', but got %v", test.counter, err)
			}
		})
	}
}
