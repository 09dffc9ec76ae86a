package common

import (
	"os"
	"path/filepath"
)

// AppDir returns the tunetexture home directory (~/.tunetexture).
// TUNETEXTURE_HOME overrides it.
func AppDir() string {
	if dir := os.Getenv("TUNETEXTURE_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tunetexture")
}

// LogPath returns the path of the diagnostic log file.
func LogPath() string {
	dir := AppDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "tunetexture.log")
}
