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

// selectAudio picks the audio track to mux into the primary output. Each
// candidate is scored in probe order: one point when its codec can be copied
// into the resolved container (or no container resolved, making every codec
// equally re-encodable), one point when it matches the preferred language
// (or none was requested). The comparison is strict greater-than so the
// first maximal-scoring candidate wins ties; the first track is the seed
// when nothing scores.
func selectAudio(audio []probe.Track, container compat.Container, haveContainer bool, preferred string) (probe.Track, bool) {
	if len(audio) == 0 {
		return probe.Track{}, false
	}

	chosen := audio[0]
	highest := 0
	for _, cand := range audio {
		score := 0
		if !haveContainer || container.AcceptsAudio(cand.Codec) {
			score++
		}
		if preferred == "" || cand.Language == preferred {
			score++
		}
		if score > highest {
			chosen = cand
			highest = score
		}
	}
	return chosen, true
}

// planSecondaryAudio emits a copy operation and manifest entry for every
// audio track besides the one muxed into the primary output. Tracks whose
// codec fits no accepted standalone container are dropped; re-encoding is
// not attempted for secondary tracks.
func planSecondaryAudio(cfg *config.Config, audio []probe.Track, primaryIndex int, plan *Plan, log zerolog.Logger) {
	for _, t := range audio {
		if t.Index == primaryIndex {
			// Already muxed into the primary output; a separate file
			// would duplicate it.
			continue
		}

		container, ok := compat.AudioContainerFor(t.Codec)
		if !ok {
			log.Debug().Int("track", t.Index).Str("codec", t.Codec).
				Msg("no accepted audio container for codec; dropping track")
			continue
		}

		lang := t.Language
		if lang == "" {
			lang = "unknown"
		}
		dest := naming.AudioTrack(t.Index, lang, container.Extension())

		plan.Operations = append(plan.Operations, StreamOperation{
			TrackIndex:  t.Index,
			Kind:        probe.KindAudio,
			Action:      ActionCopy,
			Destination: dest,
		})

		plan.Manifest.AudioTracks = append(plan.Manifest.AudioTracks, manifest.AudioTrack{
			URL:         naming.URL(cfg.URLPrefix, dest),
			Label:       langname.Label(lang, t.Title),
			Language:    langname.Code(lang),
			ContentType: container.MIMEType(),
		})
	}
}
