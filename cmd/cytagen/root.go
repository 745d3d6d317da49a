package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cytagen/internal/check"
	"cytagen/internal/config"
	"cytagen/internal/display"
	"cytagen/internal/logging"
	"cytagen/internal/pipeline"
)

// version is shown in --version; override at build time with
// -ldflags "-X main.version=...".
var version = "1.0.0-dev"

func newRootCommand() *cobra.Command {
	cfg := config.DefaultConfig()
	var configPath string
	var runCheck bool

	cmd := &cobra.Command{
		Use:   "cytagen [flags] <input-file>",
		Short: "Prepare a media file for a client-manifest video platform",
		Long: "cytagen probes a media file, remuxes or re-encodes its streams into\n" +
			"containers the target platform accepts, and writes a manifest\n" +
			"describing the playable sources, audio tracks, and subtitles.",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				if err := mergeFileConfig(cmd, &cfg, configPath); err != nil {
					return err
				}
			}

			closeLogs, err := logging.Configure(logging.Options{
				Verbose: cfg.Verbose,
				LogFile: cfg.LogFile,
			})
			if err != nil {
				return err
			}
			defer func() {
				if err := closeLogs(); err != nil {
					fmt.Fprintf(os.Stderr, "cytagen: close log file: %v\n", err)
				}
			}()

			display.PrintBanner(version)

			if runCheck {
				return check.Run()
			}

			if len(args) != 1 {
				return errors.New("need an input media file")
			}
			cfg.InputFile = args[0]

			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return pipeline.Run(ctx, &cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.OutputDir, "output", "o", cfg.OutputDir, "Output directory for media files and the manifest")
	flags.StringVarP(&cfg.URLPrefix, "url-prefix", "u", "", "Prefix prepended verbatim to every manifest URL")
	flags.StringVarP(&cfg.PreferredLanguage, "language", "l", "", "Preferred audio language tag (e.g. eng)")
	flags.StringVar(&cfg.ManifestName, "manifest-name", cfg.ManifestName, "Manifest file name inside the output directory")
	flags.BoolVarP(&cfg.DryRun, "dry-run", "d", false, "Print the plan without writing any files")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Debug logging and live ffmpeg output")
	flags.StringVar(&cfg.LogFile, "log-file", "", "Append JSON logs to this file")
	flags.StringVarP(&configPath, "config", "c", "", "TOML configuration file")
	flags.BoolVar(&runCheck, "check", false, "Verify ffmpeg/ffprobe availability and exit")

	return cmd
}

// mergeFileConfig overlays file values onto cfg for every option the user
// did not set on the command line, so flags always win over the file.
func mergeFileConfig(cmd *cobra.Command, cfg *config.Config, path string) error {
	fileCfg := config.DefaultConfig()
	if err := config.LoadFile(&fileCfg, path); err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("output") {
		cfg.OutputDir = fileCfg.OutputDir
	}
	if !flags.Changed("url-prefix") {
		cfg.URLPrefix = fileCfg.URLPrefix
	}
	if !flags.Changed("language") {
		cfg.PreferredLanguage = fileCfg.PreferredLanguage
	}
	if !flags.Changed("manifest-name") {
		cfg.ManifestName = fileCfg.ManifestName
	}
	if !flags.Changed("log-file") {
		cfg.LogFile = fileCfg.LogFile
	}
	if !flags.Changed("verbose") {
		cfg.Verbose = fileCfg.Verbose
	}
	return nil
}
