package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceNow(t *testing.T) {
	s := New(false)
	now := s.Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)
}

func TestSourceAt(t *testing.T) {
	override := time.Date(2030, 1, 1, 0, 0, 0, 0, time.FixedZone("CET", 3600))

	t.Run("deterministic honors override", func(t *testing.T) {
		s := New(true)
		got := s.At(&override)
		assert.True(t, got.Equal(override))
		assert.Equal(t, time.UTC, got.Location())
	})

	t.Run("deterministic without override falls back to wall clock", func(t *testing.T) {
		s := New(true)
		assert.WithinDuration(t, time.Now(), s.At(nil), time.Second)
	})

	t.Run("non-deterministic ignores override", func(t *testing.T) {
		s := New(false)
		assert.WithinDuration(t, time.Now(), s.At(&override), time.Second)
	})
}

func TestParseOverride(t *testing.T) {
	got, err := ParseOverride("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseOverride("1704067200000")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *got)

	_, err = ParseOverride("not-a-number")
	assert.Error(t, err)
}
