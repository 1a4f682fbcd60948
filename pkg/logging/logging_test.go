package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/stepmap/stepmap/pkg/logging"
)

func TestDefaultConfig(t *testing.T) {
	cfg := logging.DefaultConfig()

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "auto", cfg.Format)
	assert.Equal(t, "stderr", cfg.Output)
	assert.False(t, cfg.AddCaller)
}

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf)

	logger.Info().Str("framework", "nextjs").Msg("catalog loaded")

	assert.Contains(t, buf.String(), `"framework":"nextjs"`)
	assert.Contains(t, buf.String(), "catalog loaded")
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf)

	ctx := logging.WithLogger(context.Background(), &logger)
	logging.Ctx(ctx).Info().Msg("from context")

	assert.Contains(t, buf.String(), "from context")
}

func TestFromContextFallsBack(t *testing.T) {
	assert.Equal(t, logging.Default(), logging.FromContext(context.Background()))
	assert.Equal(t, logging.Default(), logging.FromContext(nil)) //nolint:staticcheck // exercising the nil guard
}

func TestWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf)

	ctx := logging.WithLogger(context.Background(), &logger)
	ctx = logging.WithRequestID(ctx, "req-123")

	assert.Equal(t, "req-123", logging.RequestID(ctx))

	logging.Ctx(ctx).Info().Msg("tagged")
	assert.Contains(t, buf.String(), "req-123")
}

func TestSetDefaultRestorable(t *testing.T) {
	original := *logging.Default()
	defer logging.SetDefault(original)

	logging.SetDefault(zerolog.Nop())
	assert.Equal(t, zerolog.Nop(), *logging.Default())
}

func TestTestLoggerCaptures(t *testing.T) {
	tl := logging.NewTestLogger(t)
	tl.Info().Msg("captured line")

	assert.True(t, tl.Contains("captured line"))
}
