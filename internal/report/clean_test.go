package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCell(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"plain string", "Demographics", "Demographics"},
		{"leading formula stripped", "=SUM(A1:A9)", "SUM(A1:A9)"},
		{"stacked equals stripped", "==cmd", "cmd"},
		{"interior equals kept", "AGE=DOB-VISITDT", "AGE=DOB-VISITDT"},
		{"control characters removed", "line\r1\x00end", "line1end"},
		{"int", 42, "42"},
		{"float drops trailing zero", 200.0, "200"},
		{"float keeps fraction", 0.75, "0.75"},
		{"bool", false, "false"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanCell(tt.value))
		})
	}
}
