package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubmissionDate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected time.Time
		ok       bool
	}{
		{"sheet date", "25/12/2025", time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC), true},
		{"sheet date with time", "03/04/2025 14:30", time.Date(2025, 4, 3, 14, 30, 0, 0, time.UTC), true},
		{"sheet date with seconds", "1/2/2025 09:05:30", time.Date(2025, 2, 1, 9, 5, 30, 0, time.UTC), true},
		{"iso date", "2025-12-25", time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC), true},
		{"iso datetime", "2025-12-25T10:00:00", time.Date(2025, 12, 25, 10, 0, 0, 0, time.UTC), true},
		{"rfc3339", "2025-12-25T10:00:00Z", time.Date(2025, 12, 25, 10, 0, 0, 0, time.UTC), true},
		{"day first wins over month first", "03/04/2025", time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC), true},
		{"invalid month", "25/13/2025", time.Time{}, false},
		{"empty", "", time.Time{}, false},
		{"garbage", "yesterday", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSubmissionDate(tt.raw)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, got.Equal(tt.expected), "got %v want %v", got, tt.expected)
			}
		})
	}
}
