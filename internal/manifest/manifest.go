// Package manifest defines the playback metadata document the platform
// trusts without inspecting the media itself, plus its JSON writer. Field
// casing follows the platform's expected camelCase convention exactly; a
// wrong key or a wrong declared codec/quality value is invisible to the
// server and only breaks in the client.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// Video is the manifest for one prepared media file.
type Video struct {
	Title       string       `json:"title"`
	Duration    float64      `json:"duration"`
	Sources     []Source     `json:"sources"`
	AudioTracks []AudioTrack `json:"audioTracks"`
	TextTracks  []TextTrack  `json:"textTracks"`
}

// Source is one playable video+audio rendition.
type Source struct {
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Quality     int    `json:"quality"`
	BitRate     uint64 `json:"bitrate"`
}

// AudioTrack is one alternate audio rendition.
type AudioTrack struct {
	URL         string `json:"url"`
	Label       string `json:"label"`
	Language    string `json:"language"`
	ContentType string `json:"contentType"`
}

// TextTrack is one subtitle rendition.
type TextTrack struct {
	URL         string `json:"url"`
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
}

// AcceptedQualities lists the discrete quality tiers the platform accepts
// for a Source. Any other value is rejected client-side.
var AcceptedQualities = [...]int{240, 360, 480, 540, 720, 1080, 1440, 2160}

// SnapQuality snaps a coded height to the nearest accepted tier, ties
// rounding down. Encoders commonly pad the coded height (1088 for 1080
// content); declaring the padded value would violate the accepted set.
func SnapQuality(height int) int {
	best := AcceptedQualities[0]
	for _, q := range AcceptedQualities[1:] {
		if abs(q-height) < abs(best-height) {
			best = q
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Write serializes v as JSON to path, truncating any existing file.
func Write(path string, v *Video) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create manifest: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("write manifest: %w", err)
	}
	return f.Close()
}
