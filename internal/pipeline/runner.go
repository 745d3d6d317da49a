// Package pipeline orchestrates the processing of one input file: probe,
// plan, output directory setup, manifest writing, and the ffmpeg run.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cytagen/internal/config"
	"cytagen/internal/display"
	"cytagen/internal/ffmpeg"
	"cytagen/internal/logging"
	"cytagen/internal/manifest"
	"cytagen/internal/planner"
	"cytagen/internal/probe"
)

// Run processes cfg.InputFile end to end. In dry-run mode the plan is
// rendered and nothing is written.
func Run(ctx context.Context, cfg *config.Config) error {
	log := logging.WithComponent("pipeline")

	pr, err := probe.Probe(ctx, cfg.InputFile)
	if err != nil {
		return err
	}
	log.Info().
		Int("tracks", len(pr.Tracks)).
		Float64("duration", pr.Duration).
		Msg("probed input")

	plan, err := planner.BuildPlan(cfg, pr)
	if err != nil {
		return err
	}

	if cfg.DryRun || cfg.Verbose {
		fmt.Println(display.Summarize(plan))
	}
	if cfg.DryRun {
		log.Info().Msg("dry run; no files written")
		return nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	manifestPath := filepath.Join(cfg.OutputDir, cfg.ManifestName)
	if err := manifest.Write(manifestPath, &plan.Manifest); err != nil {
		return err
	}
	log.Info().Str("path", manifestPath).Msg("wrote manifest")

	if len(plan.Operations) == 0 {
		log.Warn().Msg("plan has no stream operations; nothing to transcode")
		return nil
	}

	res := ffmpeg.Execute(ctx, cfg, plan)
	if res.Err != nil {
		if !cfg.Verbose && res.Stderr != "" {
			log.Error().Msg(strings.TrimSpace(res.Stderr))
		}
		return fmt.Errorf("ffmpeg: %w", res.Err)
	}

	log.Info().Int("operations", len(plan.Operations)).Msg("transcode complete")
	return nil
}
