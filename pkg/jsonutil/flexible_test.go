package jsonutil

import (
	"encoding/json"
	"testing"
)

func TestFlexibleIntValue(t *testing.T) {
	tests := []struct {
		name  string
		input json.RawMessage
		want  *int
	}{
		{
			name:  "integer value",
			input: json.RawMessage(`500`),
			want:  intPtr(500),
		},
		{
			name:  "numeric string",
			input: json.RawMessage(`"500"`),
			want:  intPtr(500),
		},
		{
			name:  "float truncates",
			input: json.RawMessage(`500.9`),
			want:  intPtr(500),
		},
		{
			name:  "string with thousands separator",
			input: json.RawMessage(`"1,000"`),
			want:  intPtr(1000),
		},
		{
			name:  "null value",
			input: json.RawMessage(`null`),
			want:  nil,
		},
		{
			name:  "nil raw message",
			input: nil,
			want:  nil,
		},
		{
			name:  "non-numeric string",
			input: json.RawMessage(`"varies"`),
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FlexibleIntValue(tt.input)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("expected %d, got %d", *tt.want, *got)
			}
		})
	}
}

func TestFlexibleFloatValue(t *testing.T) {
	tests := []struct {
		name  string
		input json.RawMessage
		want  *float64
	}{
		{
			name:  "number value",
			input: json.RawMessage(`3.5`),
			want:  floatPtr(3.5),
		},
		{
			name:  "numeric string",
			input: json.RawMessage(`"3.50"`),
			want:  floatPtr(3.5),
		},
		{
			name:  "dollar prefix",
			input: json.RawMessage(`"$3.50"`),
			want:  floatPtr(3.5),
		},
		{
			name:  "yuan prefix",
			input: json.RawMessage(`"¥25"`),
			want:  floatPtr(25),
		},
		{
			name:  "thousands separator",
			input: json.RawMessage(`"1,250.75"`),
			want:  floatPtr(1250.75),
		},
		{
			name:  "null value",
			input: json.RawMessage(`null`),
			want:  nil,
		},
		{
			name:  "empty raw message",
			input: json.RawMessage{},
			want:  nil,
		},
		{
			name:  "prose string",
			input: json.RawMessage(`"contact for pricing"`),
			want:  nil,
		},
		{
			name:  "object",
			input: json.RawMessage(`{"amount": 3.5}`),
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FlexibleFloatValue(tt.input)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("expected %f, got %f", *tt.want, *got)
			}
		})
	}
}

func TestFlexibleStringValue(t *testing.T) {
	tests := []struct {
		name  string
		input json.RawMessage
		want  string
	}{
		{
			name:  "string value",
			input: json.RawMessage(`"hello"`),
			want:  "hello",
		},
		{
			name:  "integer value",
			input: json.RawMessage(`42`),
			want:  "42",
		},
		{
			name:  "float value",
			input: json.RawMessage(`3.14`),
			want:  "3.14",
		},
		{
			name:  "boolean true",
			input: json.RawMessage(`true`),
			want:  "true",
		},
		{
			name:  "null value",
			input: json.RawMessage(`null`),
			want:  "",
		},
		{
			name:  "nil raw message",
			input: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FlexibleStringValue(tt.input); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
