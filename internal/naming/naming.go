// Package naming builds output file names and manifest URLs. The same names
// feed both the stream operations and the manifest entries, so they are
// constructed in exactly one place and must never diverge.
package naming

import "fmt"

// Primary returns the muxed video+audio output name, e.g. "main.mp4".
func Primary(extension string) string {
	return "main." + extension
}

// AudioTrack returns the standalone audio output name for a track, e.g.
// "audio_2_eng.m4a". An empty language becomes "unknown".
func AudioTrack(index int, language, extension string) string {
	return fmt.Sprintf("audio_%d_%s.%s", index, orUnknown(language), extension)
}

// Subtitle returns the WebVTT subtitle output name for a track, e.g.
// "sub_3_eng.vtt". An empty language becomes "unknown".
func Subtitle(index int, language string) string {
	return fmt.Sprintf("sub_%d_%s.vtt", index, orUnknown(language))
}

func orUnknown(language string) string {
	if language == "" {
		return "unknown"
	}
	return language
}

// URL joins the configured prefix with a file name verbatim. No separator is
// inserted or normalized; the prefix must already end the way the media host
// expects.
func URL(prefix, filename string) string {
	return prefix + filename
}
