package filesystem

import (
	"os"
	"path/filepath"
)

// UserHomeDir returns the current user's home directory.
// If the home directory cannot be determined, it returns "." as a fallback.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// StateDir is where voxsh keeps its config and execution journal (~/.voxsh).
func StateDir() string {
	return filepath.Join(UserHomeDir(), ".voxsh")
}
