// Package planner is the central decision engine: it turns a probe result
// into an ordered list of stream operations plus the manifest describing
// them. Decisions and execution are deliberately separate; this package
// never touches the filesystem or an external tool.
package planner

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"cytagen/internal/compat"
	"cytagen/internal/config"
	"cytagen/internal/logging"
	"cytagen/internal/manifest"
	"cytagen/internal/naming"
	"cytagen/internal/probe"
)

// ErrNoCodedHeight means the primary video track reports no vertical
// resolution, so the manifest quality value cannot be declared. Treated as
// fatal: emitting a source with a guessed quality would be a manifest lie.
var ErrNoCodedHeight = errors.New("video track reports no coded height")

// BuildPlan produces the complete plan for one probed file.
//
// Flow:
//  1. Partition tracks by kind.
//  2. Pick the primary video track (first in probe order) and score audio
//     candidates for the best default pairing.
//  3. Decide copy-vs-encode for the primary pair; emit main.<ext>.
//  4. Emit copy operations for the remaining representable audio tracks.
//  5. Emit WebVTT conversions for the text subtitle tracks.
func BuildPlan(cfg *config.Config, pr *probe.Result) (*Plan, error) {
	log := logging.WithComponent("planner")
	tracks := Classify(pr.Tracks)

	plan := &Plan{
		Manifest: manifest.Video{
			Title:       titleFor(pr, cfg.InputFile),
			Duration:    pr.Duration,
			Sources:     []manifest.Source{},
			AudioTracks: []manifest.AudioTrack{},
			TextTracks:  []manifest.TextTrack{},
		},
	}

	if len(tracks.Video) > 0 {
		if err := planPrimary(cfg, pr, tracks, plan, log); err != nil {
			return nil, err
		}
	} else {
		log.Debug().Msg("no video tracks; producing no sources")
	}

	planSubtitles(cfg, tracks.Subtitle, plan, log)
	return plan, nil
}

// planPrimary handles the primary video+audio pairing. Without any audio
// track no source is emitted at all; a video-only rendition is not part of
// the manifest contract.
func planPrimary(cfg *config.Config, pr *probe.Result, tracks Classified, plan *Plan, log zerolog.Logger) error {
	video := tracks.Video[0]
	container, haveContainer := compat.VideoContainerFor(video.Codec)

	audio, ok := selectAudio(tracks.Audio, container, haveContainer, cfg.PreferredLanguage)
	if !ok {
		log.Warn().Int("track", video.Index).Msg("no audio tracks to pair with video; skipping primary source")
		return nil
	}

	if video.CodedHeight == 0 {
		return fmt.Errorf("track %d (%s): %w", video.Index, video.Codec, ErrNoCodedHeight)
	}
	quality := manifest.SnapQuality(video.CodedHeight)

	if haveContainer {
		dest := naming.Primary(container.Extension())

		plan.Operations = append(plan.Operations, StreamOperation{
			TrackIndex:  video.Index,
			Kind:        probe.KindVideo,
			Action:      ActionCopy,
			Destination: dest,
		})

		audioOp := StreamOperation{
			TrackIndex:  audio.Index,
			Kind:        probe.KindAudio,
			Destination: dest,
		}
		if container.AcceptsAudio(audio.Codec) {
			audioOp.Action = ActionCopy
			// ffmpeg treats FLAC-in-MP4 as experimental; the executor must
			// be told the combination is allowed.
			audioOp.Experimental = container == compat.MP4 && audio.Codec == "flac"
		} else {
			audioOp.Action = ActionEncode
			audioOp.Encoder = container.AudioEncoder()
			audioOp.Channels = 2 // downmix to stereo to bound encode cost
		}
		plan.Operations = append(plan.Operations, audioOp)

		plan.Manifest.Sources = append(plan.Manifest.Sources, manifest.Source{
			URL:         naming.URL(cfg.URLPrefix, dest),
			ContentType: container.MIMEType(),
			Quality:     quality,
			BitRate:     pr.BitRate,
		})
	} else {
		// No target container accepts the source video codec: full
		// re-encode to the universally playable WEBM pair.
		dest := naming.Primary(compat.WEBM.Extension())
		log.Info().Str("codec", video.Codec).Msg("no target container accepts video codec; re-encoding")

		plan.Operations = append(plan.Operations,
			StreamOperation{
				TrackIndex:  video.Index,
				Kind:        probe.KindVideo,
				Action:      ActionEncode,
				Encoder:     compat.FallbackVideoEncoder,
				Destination: dest,
			},
			StreamOperation{
				TrackIndex:  audio.Index,
				Kind:        probe.KindAudio,
				Action:      ActionEncode,
				Encoder:     compat.FallbackAudioEncoder,
				Channels:    2,
				Destination: dest,
			},
		)

		plan.Manifest.Sources = append(plan.Manifest.Sources, manifest.Source{
			URL:         naming.URL(cfg.URLPrefix, dest),
			ContentType: compat.WEBM.MIMEType(),
			Quality:     quality,
			BitRate:     pr.BitRate, // overall bitrate; the encoded rate is not knowable here
		})
	}

	planSecondaryAudio(cfg, tracks.Audio, audio.Index, plan, log)
	return nil
}

// titleFor picks the manifest title: the container title tag when present,
// otherwise the input file name without extension.
func titleFor(pr *probe.Result, inputFile string) string {
	if pr.Title != "" {
		return pr.Title
	}
	base := filepath.Base(inputFile)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
