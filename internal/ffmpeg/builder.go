// Package ffmpeg translates a finished plan into an ffmpeg invocation. It
// owns no decisions: every codec, channel count, and destination comes from
// the plan's stream operations.
package ffmpeg

import (
	"fmt"
	"path/filepath"
	"strconv"

	"cytagen/internal/config"
	"cytagen/internal/planner"
	"cytagen/internal/probe"
)

// Build constructs the complete ffmpeg argument slice for a plan, starting
// with the binary name. Operations are grouped by destination in plan
// order; each output file gets its stream maps, codec arguments, and
// finally the output path.
func Build(cfg *config.Config, plan *planner.Plan) []string {
	args := make([]string, 0, 64)

	// --- Preamble ---
	args = append(args, "ffmpeg", "-hide_banner", "-nostdin", "-y")
	if cfg.Verbose {
		args = append(args, "-loglevel", "info", "-stats")
	} else {
		args = append(args, "-loglevel", "error")
	}

	// --- Input ---
	args = append(args, "-i", cfg.InputFile)

	// --- One section per output file ---
	ops := plan.Operations
	for start := 0; start < len(ops); {
		end := start
		for end < len(ops) && ops[end].Destination == ops[start].Destination {
			end++
		}
		args = appendOutput(args, cfg.OutputDir, ops[start:end])
		start = end
	}

	return args
}

// appendOutput emits the maps, codec args, and output path for the
// operations sharing one destination file.
func appendOutput(args []string, outputDir string, ops []planner.StreamOperation) []string {
	for _, op := range ops {
		args = append(args, "-map", fmt.Sprintf("0:%d", op.TrackIndex))
	}

	experimental := false
	for _, op := range ops {
		args = append(args, codecFlag(op.Kind), codecArg(op))
		if op.Action == planner.ActionEncode && op.Channels > 0 {
			args = append(args, "-ac", strconv.Itoa(op.Channels))
		}
		if op.Experimental {
			experimental = true
		}
	}
	if experimental {
		args = append(args, "-strict", "experimental")
	}

	return append(args, filepath.Join(outputDir, ops[0].Destination))
}

func codecFlag(kind probe.TrackKind) string {
	switch kind {
	case probe.KindVideo:
		return "-c:v"
	case probe.KindAudio:
		return "-c:a"
	default:
		return "-c:s"
	}
}

func codecArg(op planner.StreamOperation) string {
	if op.Action == planner.ActionCopy {
		return "copy"
	}
	return op.Encoder
}
