package memlog_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/lunadash/internal/memlog"
)

func TestLog(t *testing.T) {

	t.Run("zerolog output is decoded", func(t *testing.T) {
		l := memlog.New(10)
		logger := zerolog.New(l)
		logger.Warn().Str("query", "Atlantis").Msg("no results")

		entries := l.Get()
		require.Len(t, entries, 1)
		assert.Equal(t, "warn", entries[0]["level"])
		assert.Equal(t, "no results", entries[0]["message"])
		assert.Equal(t, "Atlantis", entries[0]["query"])
	})

	t.Run("bounded", func(t *testing.T) {
		l := memlog.New(2)
		logger := zerolog.New(l)
		logger.Info().Msg("one")
		logger.Info().Msg("two")
		logger.Info().Msg("three")

		entries := l.Get()
		require.Len(t, entries, 2)
		assert.Equal(t, "two", entries[0]["message"])
		assert.Equal(t, "three", entries[1]["message"])
	})

	t.Run("invalid input", func(t *testing.T) {
		l := memlog.New(2)
		_, err := l.Write([]byte("not json"))
		assert.Error(t, err)
		assert.Empty(t, l.Get())
	})

	t.Run("get returns a copy", func(t *testing.T) {
		l := memlog.New(2)
		logger := zerolog.New(l)
		logger.Info().Msg("x")
		got := l.Get()
		got[0] = memlog.Entry{}
		assert.Equal(t, "x", l.Get()[0]["message"])
	})
}
