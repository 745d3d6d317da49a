package compat

import "testing"

func TestVideoContainerFor(t *testing.T) {
	tests := []struct {
		codec string
		want  Container
		ok    bool
	}{
		{"av1", WEBM, true},
		{"vp8", WEBM, true},
		{"vp9", WEBM, true},
		{"h264", MP4, true},
		{"hevc", MP4, true},
		{"mpeg4", MP4, true},
		{"mpeg2video", MP4, true},
		{"theora", OGG, true},
		{"prores", "", false},
		{"msmpeg4v3", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := VideoContainerFor(tt.codec)
		if got != tt.want || ok != tt.ok {
			t.Errorf("VideoContainerFor(%q) = (%q, %v), want (%q, %v)", tt.codec, got, ok, tt.want, tt.ok)
		}
	}
}

func TestContainerAcceptsAudio(t *testing.T) {
	tests := []struct {
		container Container
		codec     string
		want      bool
	}{
		{MP4, "aac", true},
		{MP4, "alac", true},
		{MP4, "flac", true},
		{MP4, "opus", true},
		{MP4, "mp3", true},
		{MP4, "vorbis", false},
		{WEBM, "opus", true},
		{WEBM, "vorbis", true},
		{WEBM, "flac", false},
		{WEBM, "aac", false},
		{OGG, "opus", true},
		{OGG, "vorbis", true},
		{OGG, "flac", true},
		{OGG, "aac", false},
	}

	for _, tt := range tests {
		if got := tt.container.AcceptsAudio(tt.codec); got != tt.want {
			t.Errorf("%s.AcceptsAudio(%q) = %v, want %v", tt.container, tt.codec, got, tt.want)
		}
	}
}

func TestContainerMetadata(t *testing.T) {
	tests := []struct {
		container Container
		ext       string
		mime      string
		encoder   string
	}{
		{MP4, "mp4", "video/mp4", "aac"},
		{WEBM, "webm", "video/webm", "libopus"},
		{OGG, "ogv", "video/ogg", "libopus"},
	}

	for _, tt := range tests {
		if got := tt.container.Extension(); got != tt.ext {
			t.Errorf("%s.Extension() = %q, want %q", tt.container, got, tt.ext)
		}
		if got := tt.container.MIMEType(); got != tt.mime {
			t.Errorf("%s.MIMEType() = %q, want %q", tt.container, got, tt.mime)
		}
		if got := tt.container.AudioEncoder(); got != tt.encoder {
			t.Errorf("%s.AudioEncoder() = %q, want %q", tt.container, got, tt.encoder)
		}
	}
}

func TestAudioContainerFor(t *testing.T) {
	tests := []struct {
		codec string
		want  AudioContainer
		ok    bool
	}{
		{"aac", AudioM4A, true},
		{"alac", AudioM4A, true},
		{"aac_latm", AudioM4A, true},
		{"opus", AudioOGG, true},
		{"vorbis", AudioOGG, true},
		{"flac", AudioOGG, true},
		{"mp3", AudioPseudoM4A, true},
		{"truehd", "", false},
		{"dts", "", false},
	}

	for _, tt := range tests {
		got, ok := AudioContainerFor(tt.codec)
		if got != tt.want || ok != tt.ok {
			t.Errorf("AudioContainerFor(%q) = (%q, %v), want (%q, %v)", tt.codec, got, ok, tt.want, tt.ok)
		}
	}
}

func TestAudioContainerMetadata(t *testing.T) {
	tests := []struct {
		container AudioContainer
		ext       string
		mime      string
	}{
		{AudioM4A, "m4a", "audio/mp4"},
		{AudioPseudoM4A, "m4a", "audio/mp4"},
		{AudioOGG, "ogg", "audio/ogg"},
	}

	for _, tt := range tests {
		if got := tt.container.Extension(); got != tt.ext {
			t.Errorf("%s.Extension() = %q, want %q", tt.container, got, tt.ext)
		}
		if got := tt.container.MIMEType(); got != tt.mime {
			t.Errorf("%s.MIMEType() = %q, want %q", tt.container, got, tt.mime)
		}
	}
}

func TestIsBitmapSubtitle(t *testing.T) {
	for _, codec := range []string{"dvb_subtitle", "dvd_subtitle", "hdmv_pgs_subtitle", "xsub"} {
		if !IsBitmapSubtitle(codec) {
			t.Errorf("IsBitmapSubtitle(%q) = false, want true", codec)
		}
	}
	for _, codec := range []string{"subrip", "ass", "webvtt", ""} {
		if IsBitmapSubtitle(codec) {
			t.Errorf("IsBitmapSubtitle(%q) = true, want false", codec)
		}
	}
}
