package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ReturnsConfigError(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE", "sqlite")

	err := run(slog.New(slog.DiscardHandler))

	require.ErrorContains(t, err, "load config")
}

func TestRun_ReturnsJobStartError(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE", "memory")
	t.Setenv("KAFKA_HOST", "")
	t.Setenv("DISPATCH_RETRY_SCHEDULE", "every now and then")

	err := run(slog.New(slog.DiscardHandler))

	require.ErrorContains(t, err, "start jobs")
}
