package profiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinalizeErrorsOnEmptySession(t *testing.T) {
	p := New([]string{"a", "b"}, Config{})
	_, err := p.Finalize()
	assert.ErrorIs(t, err, ErrSessionEmpty)
}

func TestUpdateBatchAndFinalizeBasicFlow(t *testing.T) {
	p := New([]string{"id", "name"}, Config{})
	p.UpdateBatch([][]string{
		{"1", "Alice"},
		{"2", "Bob"},
		{"3", "Carol"},
	})
	rep, err := p.Finalize()
	assert.NoError(t, err)
	assert.Equal(t, uint64(3), rep.Summary.TotalRows)
	assert.Equal(t, 2, rep.Summary.TotalColumns)
	assert.Equal(t, "id", rep.Columns[0].Name)
	assert.Equal(t, "Integer", rep.Columns[0].Stats.InferredType)
}

func TestCorrelationWiredWhenConfigured(t *testing.T) {
	p := New([]string{"a", "b"}, Config{CorrelationColumns: []string{"a", "b"}})
	p.UpdateBatch([][]string{
		{"1", "2"}, {"2", "4"}, {"3", "6"}, {"4", "8"}, {"5", "10"},
	})
	_, err := p.Finalize()
	assert.NoError(t, err)
	assert.NotNil(t, p.corr)

	m, ok := p.Correlation()
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, m.Names)
	assert.Greater(t, m.R[0][1], 0.9999)
}

func TestCorrelationUnavailableWhenNotConfigured(t *testing.T) {
	p := New([]string{"a", "b"}, Config{})
	p.UpdateBatch([][]string{{"1", "2"}, {"2", "4"}})
	_, err := p.Finalize()
	assert.NoError(t, err)

	_, ok := p.Correlation()
	assert.False(t, ok)
}

func TestDuplicateRowsCountedAcrossBatch(t *testing.T) {
	p := New([]string{"x"}, Config{})
	p.UpdateBatch([][]string{{"a"}, {"b"}, {"a"}, {"a"}})
	_, err := p.Finalize()
	assert.NoError(t, err)
	assert.Equal(t, uint64(2), p.duplicates.Count())
}
