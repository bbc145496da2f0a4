package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOperationStats(t *testing.T) {
	stats := NewOperationStats(10)
	go stats.Start()
	assert.Equal(t, 10, stats.windowSize)
	assert.NotNil(t, stats.quit)
	assert.Len(t, stats.insertHistory, 10)
	assert.Len(t, stats.deleteHistory, 10)
	assert.Len(t, stats.readHistory, 10)

	rps := stats.GetRPS()

	assert.Equal(t, 0.0, rps.InsertRPS)
	assert.Equal(t, 0.0, rps.DeleteRPS)
	assert.Equal(t, 0.0, rps.ReadRPS)

	for i := 0; i < 10; i++ {
		stats.IncrementInsert()
	}
	for i := 0; i < 5; i++ {
		stats.IncrementDelete()
	}
	for i := 0; i < 3; i++ {
		stats.IncrementRead()
	}

	stats.UpdateWindow()

	rps = stats.GetRPS()

	assert.Equal(t, 1.0, rps.InsertRPS)
	assert.Equal(t, 0.5, rps.DeleteRPS)
	assert.Equal(t, 0.3, rps.ReadRPS)

	stats.Stop()
	stats.Stop()
}

func TestOperationStatsWindowSlides(t *testing.T) {
	stats := NewOperationStats(2)

	stats.IncrementInsert()
	stats.IncrementInsert()
	stats.UpdateWindow()
	assert.Equal(t, 1.0, stats.GetRPS().InsertRPS)

	stats.UpdateWindow()
	assert.Equal(t, 1.0, stats.GetRPS().InsertRPS)

	stats.UpdateWindow()
	assert.Equal(t, 0.0, stats.GetRPS().InsertRPS)
}

func TestOperationStats_GetRPS(t *testing.T) {
	tests := []struct {
		name     string
		insert   uint64
		delete   uint64
		read     uint64
		expected Stats
	}{
		{
			name:     "All zero",
			expected: Stats{},
		},
		{
			name:   "All non-zero",
			insert: 10,
			delete: 5,
			read:   3,
			expected: Stats{
				InsertRPS: 1.0,
				DeleteRPS: 0.5,
				ReadRPS:   0.3,
			},
		},
		{
			name:   "Large numbers",
			insert: 5000,
			delete: 2500,
			read:   3561,
			expected: Stats{
				InsertRPS: 500.0,
				DeleteRPS: 250.0,
				ReadRPS:   356.1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := NewOperationStats(10)
			stats.insertCount = tt.insert
			stats.deleteCount = tt.delete
			stats.readCount = tt.read

			stats.UpdateWindow()

			rps := stats.GetRPS()
			assert.Equal(t, tt.expected.InsertRPS, rps.InsertRPS)
			assert.Equal(t, tt.expected.DeleteRPS, rps.DeleteRPS)
			assert.Equal(t, tt.expected.ReadRPS, rps.ReadRPS)
		})
	}
}
