package planner

import (
	"cytagen/internal/manifest"
	"cytagen/internal/probe"
)

// Action says how a source stream reaches its output file.
type Action int

const (
	ActionCopy   Action = iota // repackage the encoded bits unmodified
	ActionEncode               // decode and re-encode with Encoder
)

// StreamOperation is one entry in the transcode plan: select source track
// TrackIndex, copy or encode it, and write it to Destination (relative to
// the output directory). Consecutive operations sharing a Destination are
// muxed into the same output file.
type StreamOperation struct {
	TrackIndex   int
	Kind         probe.TrackKind
	Action       Action
	Encoder      string // ffmpeg encoder name when Action == ActionEncode
	Channels     int    // target channel count; 0 keeps the source layout
	Experimental bool   // mux needs the experimental allowance (FLAC in MP4)
	Destination  string
}

// Plan pairs the ordered operation list with the manifest describing the
// result. It is pure data: building it performs no I/O, so the decision
// engine is testable without ever invoking an external process, and the
// execution collaborator translates it into a tool invocation separately.
type Plan struct {
	Operations []StreamOperation
	Manifest   manifest.Video
}
