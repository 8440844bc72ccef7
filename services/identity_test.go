package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatIssueID(t *testing.T) {
	tests := []struct {
		year int
		seq  int64
		want string
	}{
		{2025, 1, "ISS-2025-001"},
		{2025, 42, "ISS-2025-042"},
		{2025, 999, "ISS-2025-999"},
		{2025, 1000, "ISS-2025-1000"},
		{2026, 12345, "ISS-2026-12345"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatIssueID(tt.year, tt.seq))
	}
}

func TestIssueSequenceKey(t *testing.T) {
	assert.Equal(t, "issue-2025", IssueSequenceKey(2025))
	assert.NotEqual(t, IssueSequenceKey(2025), IssueSequenceKey(2026))
}
