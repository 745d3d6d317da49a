// Package langname maps stream language tags to the human-readable labels
// and canonical codes used in the manifest. Unrecognized tags fall back to
// the raw input so an exotic or mistagged stream still gets a usable label.
package langname

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var names = display.English.Languages()

// Name returns the English display name for a language tag ("eng" ->
// "English"). Unrecognized tags are returned as-is.
func Name(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if n := names.Name(tag); n != "" {
		return n
	}
	return code
}

// Code canonicalizes a language tag to its shortest base form ("eng" ->
// "en"), which is what the platform expects in the manifest's language
// field. Unrecognized tags pass through unchanged.
func Code(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	base, conf := tag.Base()
	if conf == language.No {
		return code
	}
	return base.String()
}

// Label builds the track label shown in player menus: "<Name> (<title>)"
// when the stream carries a title, the bare name otherwise.
func Label(code, title string) string {
	s := Name(code)
	if title != "" {
		s += " (" + title + ")"
	}
	return s
}
