package log

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryString(t *testing.T) {
	tests := []struct {
		c    Category
		want string
	}{
		{CategoryTick, "TICK"},
		{CategoryState, "STATE"},
		{CategoryLap, "LAP"},
		{CategoryDrift, "DRIFT"},
		{Category(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.c.String())
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("Drift")
	require.NoError(t, err)
	assert.Equal(t, CategoryDrift, c)

	_, err = ParseCategory("frame")
	assert.Error(t, err)
}

func TestEncodeDecodeTickEvent(t *testing.T) {
	ts := time.Date(2024, 5, 1, 8, 30, 0, 123456789, time.UTC)
	event := Event{
		Timestamp: ts,
		TimerID:   "5f0c8a59-93a4-4b0e-8b8f-4fb5d5b2a111",
		Name:      "kitchen",
		Category:  CategoryTick,
		Tick: &TickEvent{
			Seq:       3,
			Remaining: 7 * time.Second,
			Elapsed:   3 * time.Second,
			Display:   "00:07",
		},
	}

	data, err := EncodeEvent(event)
	require.NoError(t, err)

	decoded, err := DecodeEvent(data)
	require.NoError(t, err)

	assert.True(t, decoded.Timestamp.Equal(ts), "timestamp lost precision: %v", decoded.Timestamp)
	assert.Equal(t, event.TimerID, decoded.TimerID)
	assert.Equal(t, event.Name, decoded.Name)
	assert.Equal(t, CategoryTick, decoded.Category)
	require.NotNil(t, decoded.Tick)
	assert.Equal(t, *event.Tick, *decoded.Tick)
	assert.Nil(t, decoded.StateChange)
	assert.Nil(t, decoded.Lap)
	assert.Nil(t, decoded.Drift)
}

func TestDecodeEventGarbage(t *testing.T) {
	_, err := DecodeEvent([]byte{0xff, 0x00})
	assert.Error(t, err)
}
