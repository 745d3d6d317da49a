// Package check verifies that the external tools the pipeline shells out to
// are actually available, so a missing binary fails fast with a clear
// message instead of mid-run.
package check

import (
	"fmt"
	"os/exec"
	"strings"

	"cytagen/internal/logging"
)

var requiredTools = []string{"ffprobe", "ffmpeg"}

// Run looks up each required tool on PATH, logging where it was found.
// Returns an error naming every missing tool.
func Run() error {
	log := logging.WithComponent("check")

	var missing []string
	for _, tool := range requiredTools {
		path, err := exec.LookPath(tool)
		if err != nil {
			log.Error().Str("tool", tool).Msg("not found on PATH")
			missing = append(missing, tool)
			continue
		}
		log.Info().Str("tool", tool).Str("path", path).Msg("found")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
	}
	return nil
}
