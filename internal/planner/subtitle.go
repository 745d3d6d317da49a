package planner

import (
	"github.com/rs/zerolog"

	"cytagen/internal/compat"
	"cytagen/internal/config"
	"cytagen/internal/langname"
	"cytagen/internal/manifest"
	"cytagen/internal/naming"
	"cytagen/internal/probe"
)

// planSubtitles converts every text subtitle track to WebVTT. Bitmap
// subtitle codecs are dropped: converting them would require OCR. Subtitles
// are planned even when the file has no video or audio at all.
func planSubtitles(cfg *config.Config, subs []probe.Track, plan *Plan, log zerolog.Logger) {
	for _, t := range subs {
		if compat.IsBitmapSubtitle(t.Codec) {
			log.Debug().Int("track", t.Index).Str("codec", t.Codec).
				Msg("bitmap subtitles cannot be converted; dropping track")
			continue
		}

		dest := naming.Subtitle(t.Index, t.Language)

		plan.Operations = append(plan.Operations, StreamOperation{
			TrackIndex:  t.Index,
			Kind:        probe.KindSubtitle,
			Action:      ActionEncode,
			Encoder:     "webvtt",
			Destination: dest,
		})

		plan.Manifest.TextTracks = append(plan.Manifest.TextTracks, manifest.TextTrack{
			URL:         naming.URL(cfg.URLPrefix, dest),
			Name:        subtitleName(t),
			ContentType: "text/vtt",
		})
	}
}

// subtitleName labels a subtitle track: language label when tagged, then the
// stream's own title, then "Unknown".
func subtitleName(t probe.Track) string {
	if t.Language != "" {
		return langname.Label(t.Language, t.Title)
	}
	if t.Title != "" {
		return t.Title
	}
	return "Unknown"
}
