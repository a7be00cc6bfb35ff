package http

import (
	"strings"
	"testing"
)

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

type directionProbe struct {
	Action   string `validate:"required,direction"`
	Quantity int64  `validate:"required,min=1"`
}

func TestValidator_DirectionTag(t *testing.T) {
	cv := NewValidator()

	tests := []struct {
		name    string
		in      directionProbe
		wantErr bool
	}{
		{"in ok", directionProbe{Action: "IN", Quantity: 1}, false},
		{"out ok", directionProbe{Action: "OUT", Quantity: 1}, false},
		{"lowercase rejected", directionProbe{Action: "in", Quantity: 1}, true},
		{"garbage rejected", directionProbe{Action: "SIDEWAYS", Quantity: 1}, true},
		{"zero quantity rejected", directionProbe{Action: "IN"}, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := cv.Validate(&tt.in)
			if tt.wantErr && err == nil {
				t.Fatalf("want error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestToFieldErrors_Messages(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&directionProbe{Action: "SIDEWAYS"})
	if err == nil {
		t.Fatalf("expected validation errors")
	}

	fes := ToFieldErrors(err)
	if !containsFieldMsg(fes, "Action", "IN or OUT") {
		t.Fatalf("missing direction message: %+v", fes)
	}
	if !containsFieldMsg(fes, "Quantity", "required") {
		t.Fatalf("missing quantity message: %+v", fes)
	}
}
