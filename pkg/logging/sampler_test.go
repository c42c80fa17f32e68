package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorSampler(t *testing.T) {
	sampler := NewErrorSampler(10)

	// First occurrence should be logged
	ok, n := sampler.Sample("posts:network")
	assert.True(t, ok)
	assert.Equal(t, 1, n)

	// Occurrences 2-9 should not be logged
	for i := 2; i <= 9; i++ {
		ok, _ := sampler.Sample("posts:network")
		assert.False(t, ok, "occurrence %d", i)
	}

	// 10th occurrence should be logged
	ok, n = sampler.Sample("posts:network")
	assert.True(t, ok)
	assert.Equal(t, 10, n)

	sampler.Clear("posts:network")
	assert.Equal(t, 0, sampler.Count("posts:network"))
}

func TestErrorSampler_ClearPrefix(t *testing.T) {
	sampler := NewErrorSampler(5)

	sampler.Sample("posts:network")
	sampler.Sample("posts:decode")
	sampler.Sample("places:service")

	sampler.ClearPrefix("posts:")
	assert.Equal(t, 0, sampler.Count("posts:network"))
	assert.Equal(t, 0, sampler.Count("posts:decode"))
	assert.Equal(t, 1, sampler.Count("places:service"))
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn")

	logger.Info("hidden")
	logger.Warn("shown", "source", "posts")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"source":"posts"`)
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}
