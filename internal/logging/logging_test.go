package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    slog.Level
		wantErr bool
	}{
		{name: "", want: slog.LevelInfo},
		{name: "debug", want: slog.LevelDebug},
		{name: "WARN", want: slog.LevelWarn},
		{name: "error", want: slog.LevelError},
		{name: "verbose", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetup_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := Setup(Config{Level: "warn"}, &buf)
	require.NoError(t, err)
	defer closeFn()

	logger.Info("hidden")
	logger.Warn("table render aborted", slog.String("row", "ORD-001"))
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `msg="table render aborted" row=ORD-001`)

	_, _, err = Setup(Config{Level: "loud"}, &buf)
	require.Error(t, err)
}

func TestMultiHandler(t *testing.T) {
	var debugBuf, infoBuf bytes.Buffer
	multi := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo}),
	}}
	assert.True(t, multi.Enabled(context.Background(), slog.LevelDebug))
	assert.False(t, multi.Enabled(context.Background(), slog.LevelDebug-1))

	logger := slog.New(multi).With(slog.String("table", "orders")).WithGroup("render")
	logger.Debug("rendered table", slog.Int("rows", 3))
	logger.Info("written")

	assert.Contains(t, debugBuf.String(), "table=orders render.rows=3")
	assert.Contains(t, debugBuf.String(), "written")
	assert.NotContains(t, infoBuf.String(), "rendered table")
	assert.Contains(t, infoBuf.String(), "msg=written table=orders")
}
