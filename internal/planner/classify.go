package planner

import "cytagen/internal/probe"

// Classified holds probe tracks partitioned by kind. Probe order is
// preserved within each kind; the planner's first-wins and tie-break rules
// depend on it.
type Classified struct {
	Video    []probe.Track
	Audio    []probe.Track
	Subtitle []probe.Track
}

// Classify partitions tracks into video, audio, and subtitle groups. It is a
// stable partition and nothing more.
func Classify(tracks []probe.Track) Classified {
	var c Classified
	for _, t := range tracks {
		switch t.Kind {
		case probe.KindVideo:
			c.Video = append(c.Video, t)
		case probe.KindAudio:
			c.Audio = append(c.Audio, t)
		case probe.KindSubtitle:
			c.Subtitle = append(c.Subtitle, t)
		}
	}
	return c
}
