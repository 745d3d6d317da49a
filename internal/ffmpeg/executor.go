package ffmpeg

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"

	"cytagen/internal/config"
	"cytagen/internal/planner"
)

// ExecResult holds the outcome of a single ffmpeg invocation.
type ExecResult struct {
	Stderr string
	Err    error
}

// Execute builds and runs the ffmpeg command for a plan. In verbose mode
// stderr is tee'd to os.Stderr in real time; otherwise it is captured
// silently so the caller can surface it only on failure.
func Execute(ctx context.Context, cfg *config.Config, plan *planner.Plan) ExecResult {
	args := Build(cfg, plan)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stderrBuf bytes.Buffer
	if cfg.Verbose {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	return ExecResult{
		Stderr: stderrBuf.String(),
		Err:    err,
	}
}
