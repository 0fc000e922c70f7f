package handlers

import (
	"testing"
)

func TestFormFields(t *testing.T) {
	got := formFields(map[string]any{
		"name":       "Priya",
		"budget_min": float64(150000),
		"budget_max": 4.5e5,
		"phone":      nil,
		"flag":       true,
	})

	want := map[string]string{
		"name":       "Priya",
		"budget_min": "150000",
		"budget_max": "450000",
		"phone":      "",
		"flag":       "true",
	}
	for key, value := range want {
		if got[key] != value {
			t.Fatalf("%s = %q, want %q", key, got[key], value)
		}
	}
}
