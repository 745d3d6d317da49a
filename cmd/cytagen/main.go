// Command cytagen converts a media file into outputs a client-manifest
// video platform accepts, plus the JSON manifest describing how to play
// them.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cytagen: %v\n", err)
		os.Exit(1)
	}
}
