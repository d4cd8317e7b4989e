// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ProjectPlaceholder is replaced by the lower-cased project name in configured paths.
const ProjectPlaceholder = "{project}"

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	// First expand tilde if present
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	// Then expand environment variables
	return os.ExpandEnv(path)
}

// ExpandProjectPath substitutes the project placeholder and then expands the path.
func ExpandProjectPath(path, project string) string {
	return ExpandPath(strings.ReplaceAll(path, ProjectPlaceholder, strings.ToLower(project)))
}
