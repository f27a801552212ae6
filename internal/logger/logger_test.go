package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContextCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	saved := Logger
	Logger = zerolog.New(&buf)
	t.Cleanup(func() { Logger = saved })

	ctx := WithRequestID(context.Background(), "req-42")
	FromContext(ctx).Info().Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-42", line["request_id"])
	assert.Equal(t, "hello", line["message"])
}

func TestFromContextWithoutLoggerUsesGlobal(t *testing.T) {
	var buf bytes.Buffer
	saved := Logger
	Logger = zerolog.New(&buf)
	t.Cleanup(func() { Logger = saved })

	FromContext(context.Background()).Warn().Msg("global")

	assert.Contains(t, buf.String(), `"message":"global"`)
	assert.NotContains(t, buf.String(), "request_id")
}

func TestInitFallsBackToInfoLevel(t *testing.T) {
	saved, savedLevel := Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		Logger = saved
		zerolog.SetGlobalLevel(savedLevel)
	})

	Init(Config{Level: "chatty", Format: "json"})

	assert.Equal(t, zerolog.InfoLevel, Logger.GetLevel())
}
