package paths

import (
	"os"
	"runtime"

	"github.com/highvelocity/arctuner/internal/pkg/filesystem"
)

// Platform captures everything path resolution needs from the host:
// operating system, environment, home directory, and an existence probe.
// It is computed once at startup and passed in explicitly, so tests can
// substitute a synthetic value.
type Platform struct {
	OS       string
	Home     string
	Getenv   func(string) string
	Exists   func(string) bool
	ReadFile func(string) ([]byte, error)
}

// HostPlatform describes the machine the process is running on.
func HostPlatform() Platform {
	return Platform{
		OS:       runtime.GOOS,
		Home:     filesystem.UserHomeDir(),
		Getenv:   os.Getenv,
		Exists:   fileExists,
		ReadFile: os.ReadFile,
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
