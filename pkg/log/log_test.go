package log_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"shareit/pkg/log"
)

func TestRequestID(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", log.RequestID(ctx))
	assert.Empty(t, log.RequestID(context.Background()))
}

func TestInitDoesNotPanic(t *testing.T) {
	for _, cfg := range []log.ZapConfig{
		{Level: "debug", Mode: "debug", Encoding: log.EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
		{Level: "nonsense", Mode: "debug", Encoding: log.EncodingJSON},
	} {
		l := log.Init(cfg)
		ctx := log.WithRequestID(context.Background(), "abc")
		assert.NotPanics(t, func() {
			l.Debugf(ctx, "value %d", 1)
			l.Info(ctx, "hello")
		})
	}
}
