package httpmiddleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenBucketAllow(t *testing.T) {
	l := NewTokenBucket(2, 60)
	now := time.Now()

	assert.True(t, l.allow("a", now))
	assert.True(t, l.allow("a", now))
	assert.False(t, l.allow("a", now), "bucket drained")
	assert.True(t, l.allow("b", now), "keys are independent")

	// A minute later one key has refilled.
	assert.True(t, l.allow("a", now.Add(time.Minute)))
}

func TestTokenBucketZeroCapacityDefaults(t *testing.T) {
	l := NewTokenBucket(0, 5)
	assert.Equal(t, 5, l.capacity)
}
