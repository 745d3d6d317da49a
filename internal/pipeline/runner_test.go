package pipeline

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"cytagen/internal/config"
	"cytagen/internal/probe"
)

func TestRunMissingInput(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.InputFile = filepath.Join(t.TempDir(), "does-not-exist.mkv")
	cfg.OutputDir = t.TempDir()

	err := Run(context.Background(), &cfg)
	if !errors.Is(err, probe.ErrInputUnavailable) {
		t.Errorf("got %v, want ErrInputUnavailable", err)
	}
}
