// Package compat holds the static compatibility tables that drive every
// copy-vs-encode decision: which target container accepts which codecs, the
// preferred re-encode codec per container, and the file extension and MIME
// type the manifest must declare for each. All tables are immutable and safe
// to consult from concurrent plan builds.
package compat

// Container is a target video container family the platform accepts.
type Container string

const (
	MP4  Container = "mp4"
	WEBM Container = "webm"
	OGG  Container = "ogg"
)

// containerMeta is the read-only metadata attached to each container variant.
type containerMeta struct {
	extension    string
	mimeType     string
	audioCodecs  []string // codecs the container carries without re-encoding
	audioEncoder string   // ffmpeg encoder used when it cannot
}

var containerTable = map[Container]containerMeta{
	MP4: {
		extension:    "mp4",
		mimeType:     "video/mp4",
		audioCodecs:  []string{"aac", "alac", "flac", "opus", "mp3"},
		audioEncoder: "aac",
	},
	WEBM: {
		extension:    "webm",
		mimeType:     "video/webm",
		audioCodecs:  []string{"opus", "vorbis"},
		audioEncoder: "libopus",
	},
	OGG: {
		extension:    "ogv",
		mimeType:     "video/ogg",
		audioCodecs:  []string{"opus", "vorbis", "flac"},
		audioEncoder: "libopus",
	},
}

var videoContainers = map[string]Container{
	"av1":        WEBM,
	"vp8":        WEBM,
	"vp9":        WEBM,
	"h264":       MP4,
	"hevc":       MP4,
	"mpeg4":      MP4,
	"mpeg2video": MP4,
	"theora":     OGG,
}

// VideoContainerFor returns the container that can carry codec as-is. The
// second return is false when no target container accepts the codec, which
// sends the planner down the full re-encode fallback path.
func VideoContainerFor(codec string) (Container, bool) {
	c, ok := videoContainers[codec]
	return c, ok
}

// Extension returns the output file extension without dot, e.g. "ogv".
func (c Container) Extension() string { return containerTable[c].extension }

// MIMEType returns the content type the manifest declares for the container.
func (c Container) MIMEType() string { return containerTable[c].mimeType }

// AcceptsAudio reports whether codec can be copied into the container
// without re-encoding.
func (c Container) AcceptsAudio(codec string) bool {
	for _, a := range containerTable[c].audioCodecs {
		if a == codec {
			return true
		}
	}
	return false
}

// AudioEncoder returns the ffmpeg encoder used when the source audio codec
// is not in the container's accepted set.
func (c Container) AudioEncoder() string { return containerTable[c].audioEncoder }

// Fallback encoder pair for video codecs no target container accepts: the
// WEBM family is the one combination every platform client can play.
const (
	FallbackVideoEncoder = "libsvtav1"
	FallbackAudioEncoder = "libopus"
)

// AudioContainer is a standalone audio file format for secondary tracks.
//
// AudioPseudoM4A is an MP4-structured file that is declared with the plain
// MP4-family content type instead of the true M4A subtype. The platform
// rejects codecs like MP3 when they are labeled "audio/mp4" via M4A proper,
// but accepts the identical bits under the generic label; browsers play them
// either way. It is a labeling workaround, not a distinct binary format.
type AudioContainer string

const (
	AudioM4A       AudioContainer = "m4a"
	AudioOGG       AudioContainer = "ogg"
	AudioPseudoM4A AudioContainer = "pseudo-m4a"
)

var audioContainers = map[string]AudioContainer{
	"aac":      AudioM4A,
	"alac":     AudioM4A,
	"aac_latm": AudioM4A,
	"opus":     AudioOGG,
	"vorbis":   AudioOGG,
	"flac":     AudioOGG,
	"mp3":      AudioPseudoM4A,
}

// AudioContainerFor returns the standalone container for an audio codec.
// The second return is false for codecs no accepted container can carry;
// such tracks are dropped rather than re-encoded.
func AudioContainerFor(codec string) (AudioContainer, bool) {
	c, ok := audioContainers[codec]
	return c, ok
}

// Extension returns the output file extension without dot.
func (a AudioContainer) Extension() string {
	if a == AudioOGG {
		return "ogg"
	}
	return "m4a"
}

// MIMEType returns the content type the manifest declares for the container.
func (a AudioContainer) MIMEType() string {
	if a == AudioOGG {
		return "audio/ogg"
	}
	return "audio/mp4"
}

// bitmapSubtitleCodecs are image-based subtitle formats. Converting them to
// text would require OCR, so they are always excluded from the plan.
var bitmapSubtitleCodecs = map[string]bool{
	"dvb_subtitle":      true,
	"dvd_subtitle":      true,
	"hdmv_pgs_subtitle": true,
	"xsub":              true,
}

// IsBitmapSubtitle reports whether codec is an image-based subtitle format.
func IsBitmapSubtitle(codec string) bool { return bitmapSubtitleCodecs[codec] }
