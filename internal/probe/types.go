package probe

import "strings"

// TrackKind classifies an elementary media stream.
type TrackKind string

const (
	KindVideo    TrackKind = "video"
	KindAudio    TrackKind = "audio"
	KindSubtitle TrackKind = "subtitle"
)

// parseKind maps an ffprobe codec_type value onto a TrackKind. The second
// return is false for stream kinds the tool does not handle (data,
// attachment, ...); those streams are skipped during parsing.
func parseKind(s string) (TrackKind, bool) {
	switch strings.ToLower(s) {
	case "video":
		return KindVideo, true
	case "audio":
		return KindAudio, true
	case "subtitle":
		return KindSubtitle, true
	}
	return "", false
}

// Track holds the parsed properties of a single media stream. Index is the
// absolute stream index ffmpeg's -map syntax refers to.
type Track struct {
	Index       int
	Kind        TrackKind
	Codec       string // lowercase codec identifier, e.g. "h264", "aac"
	CodedHeight int    // vertical resolution; 0 when unreported (video only)
	Language    string // short stream language tag, "" when untagged
	Title       string // free-text stream title, "" when untagged
}

// Result is the fully parsed output of a single ffprobe call: the ordered
// track list plus container-level facts. It is read-only input to the
// planner; nothing mutates it after parsing.
type Result struct {
	Tracks   []Track
	Title    string  // container title tag, "" when untagged
	Duration float64 // seconds
	BitRate  uint64  // overall container bitrate
}
