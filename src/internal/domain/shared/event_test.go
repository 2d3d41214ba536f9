package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewEventMeta(t *testing.T) {
	before := time.Now()

	first := NewEventMeta(42)
	second := NewEventMeta(42)

	assert.Equal(t, "42", first.AggregateID())
	assert.NotEmpty(t, first.EventID())
	assert.NotEqual(t, first.EventID(), second.EventID())
	assert.False(t, first.OccurredAt().Before(before))
}
