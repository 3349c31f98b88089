package util

import "testing"

func TestIsEmptyString(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"a", false},
		{" a ", false},
	}

	for _, test := range tests {
		if got := IsEmptyString(test.input); got != test.expected {
			t.Errorf("Expected IsEmptyString(%q) to be %t, but got %t", test.input, test.expected, got)
		}
	}
}

func TestIsEmptyStringPtr(t *testing.T) {
	if !IsEmptyStringPtr(nil) {
		t.Errorf("Expected nil pointer to be empty")
	}

	blank := "  "
	if !IsEmptyStringPtr(&blank) {
		t.Errorf("Expected blank string pointer to be empty")
	}

	value := "x"
	if IsEmptyStringPtr(&value) {
		t.Errorf("Expected non-blank string pointer to be non-empty")
	}
}

func TestTitleizePlaceType(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hardware_store", "Hardware store"},
		{"plumber", "Plumber"},
		{"meal_takeaway", "Meal takeaway"},
		{"", "Business"},
		{"  ", "Business"},
	}

	for _, test := range tests {
		if got := TitleizePlaceType(test.input); got != test.expected {
			t.Errorf("Expected %s, but got %s", test.expected, got)
		}
	}
}
