package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sources reported by Find.
const (
	SourceExplicit = "explicit"
	SourceCwdUp    = "cwd-up"
	SourceXDG      = "xdg"
	SourceHome     = "home"
)

var (
	configFilenames = []string{
		".commentx.yaml",
		".commentx.yml",
		".commentx.toml",
		".commentx.json",
	}
	xdgFilenames = []string{
		"config.yaml",
		"config.yml",
		"config.toml",
		"config.json",
	}
)

// Find locates the config file. An explicit path wins; otherwise the search
// walks up from startDir, then tries $XDG_CONFIG_HOME/commentx and finally
// $HOME. The second result names where the file was found. No file at all is
// not an error.
func Find(startDir, explicitPath, xdgHome, home string) (string, string, error) {
	if explicit := strings.TrimSpace(explicitPath); explicit != "" {
		path, err := resolveExplicit(explicit)
		if err != nil {
			return "", "", err
		}
		return path, SourceExplicit, nil
	}

	start := strings.TrimSpace(startDir)
	if start == "" {
		start = "."
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", "", err
	}
	for {
		if found := firstExisting(dir, configFilenames); found != "" {
			return found, SourceCwdUp, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	homeDir := resolveHome(home)
	xdgRoot := strings.TrimSpace(xdgHome)
	if xdgRoot == "" && homeDir != "" {
		xdgRoot = filepath.Join(homeDir, ".config")
	}
	if xdgRoot != "" {
		if found := firstExisting(filepath.Join(xdgRoot, "commentx"), xdgFilenames); found != "" {
			return found, SourceXDG, nil
		}
	}
	if homeDir != "" {
		if found := firstExisting(homeDir, configFilenames); found != "" {
			return found, SourceHome, nil
		}
	}
	return "", "", nil
}

func resolveExplicit(path string) (string, error) {
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		path = filepath.Join(cwd, path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("config path %q points to a directory", path)
	}
	return path, nil
}

func resolveHome(home string) string {
	if h := strings.TrimSpace(home); h != "" {
		return h
	}
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return ""
}

func firstExisting(dir string, names []string) string {
	for _, name := range names {
		candidate := filepath.Join(dir, name)
		if fileExists(candidate) {
			return candidate
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
