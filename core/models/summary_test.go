package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummaryCounts(t *testing.T) {
	s := NewSummary()
	assert.True(t, s.Clean())

	s.Add(FileResult{TargetFile: TargetFile{Name: "Live.tsx"}, Status: StatusUpdated})
	s.Add(FileResult{TargetFile: TargetFile{Name: "Apply.tsx"}, Status: StatusUpdated})
	assert.True(t, s.Clean())

	s.Add(FileResult{TargetFile: TargetFile{Name: "Settings.tsx"}, Status: StatusNotFound})
	assert.False(t, s.Clean())

	assert.Len(t, s.Results, 3)
	assert.Equal(t, "2 updated, 0 would update, 0 unchanged, 1 not found", s.String())
}

func TestSummaryUnchangedIsNotClean(t *testing.T) {
	s := NewSummary()
	s.Add(FileResult{Status: StatusUnchanged})
	assert.False(t, s.Clean())
}
