// Package probe runs ffprobe against an input file and parses its compact
// line-oriented output into typed track and container facts.
package probe

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"cytagen/internal/logging"
)

// showEntries limits ffprobe output to exactly the fields the parser reads.
const showEntries = "stream_tags=title,language" +
	":stream=index,codec_type,codec_name,coded_height" +
	":stream_disposition=" +
	":format=duration,bit_rate" +
	":format_tags=title"

// Probe runs a single ffprobe call against path and returns the parsed
// result. The input is stat'ed first so an unreadable path is reported as
// such instead of as an opaque subprocess failure.
func Probe(ctx context.Context, path string) (*Result, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputUnavailable, err)
	}

	cmd := exec.CommandContext(ctx, "ffprobe",
		path,
		"-of", "compact",
		"-hide_banner",
		"-show_streams", "-show_format",
		"-show_entries", showEntries,
	)

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("ffprobe %q: %w: %s", path, ErrProbeFailed, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("ffprobe %q: %w: %w", path, ErrProbeFailed, err)
	}

	return Parse(out)
}

// Parse converts raw ffprobe compact output into a Result. Each line is
// `<kind>|<key>=<value>|...`; "format" and "stream" records are read,
// everything else is ignored. Exported for testing without a real ffprobe
// binary.
func Parse(data []byte) (*Result, error) {
	res := &Result{}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		kind, rest, found := strings.Cut(line, "|")
		if !found {
			continue
		}

		switch kind {
		case "format":
			if err := parseFormat(res, line, rest); err != nil {
				return nil, err
			}
		case "stream":
			track, ok, err := parseStream(line, rest)
			if err != nil {
				return nil, err
			}
			if ok {
				res.Tracks = append(res.Tracks, track)
			}
		}
	}
	return res, nil
}

// parseFormat reads container-level keys into res. Unrecognized keys are
// logged and ignored; a recognized key with an unparsable value is fatal.
func parseFormat(res *Result, line, rest string) error {
	log := logging.WithComponent("probe")

	for key, value := range tokens(rest) {
		switch key {
		case "duration":
			d, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return &ParseError{Field: "duration", Line: line}
			}
			res.Duration = d
		case "bit_rate":
			b, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return &ParseError{Field: "bit_rate", Line: line}
			}
			res.BitRate = b
		case "tag:title":
			res.Title = value
		default:
			log.Debug().Str("key", key).Msg("unrecognized format key")
		}
	}
	return nil
}

// parseStream reads one stream record. Streams whose codec_type is not
// video/audio/subtitle are skipped wholesale (ok=false): inspection tools
// routinely report data and attachment streams that have no place in the
// plan. index and codec_name are mandatory; their absence is fatal.
func parseStream(line, rest string) (Track, bool, error) {
	log := logging.WithComponent("probe")

	var track Track
	haveIndex, haveKind := false, false

	for key, value := range tokens(rest) {
		switch key {
		case "codec_type":
			kind, ok := parseKind(value)
			if !ok {
				return Track{}, false, nil
			}
			track.Kind = kind
			haveKind = true
		case "index":
			idx, err := strconv.Atoi(value)
			if err != nil || idx < 0 {
				return Track{}, false, &ParseError{Field: "index", Line: line}
			}
			track.Index = idx
			haveIndex = true
		case "codec_name":
			track.Codec = value
		case "coded_height":
			h, err := strconv.Atoi(value)
			if err != nil {
				return Track{}, false, &ParseError{Field: "coded_height", Line: line}
			}
			track.CodedHeight = h
		case "tag:language":
			track.Language = value
		case "tag:title":
			track.Title = value
		default:
			log.Debug().Str("key", key).Msg("unrecognized stream key")
		}
	}

	if !haveIndex {
		return Track{}, false, &ParseError{Field: "index", Line: line}
	}
	if !haveKind {
		return Track{}, false, &ParseError{Field: "codec_type", Line: line}
	}
	if track.Codec == "" {
		return Track{}, false, &ParseError{Field: "codec_name", Line: line}
	}
	return track, true, nil
}

// tokens iterates the `key=value` pairs of one record. Tokens without an
// equals sign are skipped.
func tokens(rest string) func(yield func(string, string) bool) {
	return func(yield func(string, string) bool) {
		for _, tok := range strings.Split(rest, "|") {
			key, value, found := strings.Cut(tok, "=")
			if !found {
				continue
			}
			if !yield(key, value) {
				return
			}
		}
	}
}
