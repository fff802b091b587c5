package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestWithScope(t *testing.T) {
	var buf bytes.Buffer
	SetGlobalLoggerTo(&buf, zerolog.DebugLevel)
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	l := WithScope(log.Logger, "tree")
	l.Debug().Msg("hello")
	assert.Contains(t, buf.String(), "[tree]")
	assert.Contains(t, buf.String(), "hello")

	buf.Reset()
	log.Info().Msg("plain")
	assert.Contains(t, buf.String(), "[app]")
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	SetGlobalLoggerTo(&buf, zerolog.InfoLevel)
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Debug().Msg("hidden")
	assert.Zero(t, buf.Len())
}
