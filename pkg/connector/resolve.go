package connector

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// isHTTPURL reports whether ref parses as an http or https URL.
func isHTTPURL(ref string) bool {
	u, err := url.Parse(ref)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

// isFileURL reports whether ref parses as a file:// URL.
func isFileURL(ref string) bool {
	u, err := url.Parse(ref)
	return err == nil && u.Scheme == "file"
}

// resolvePath maps any non-HTTP reference, file:// URL or local path, to a
// concrete filesystem path.
func resolvePath(ref string) (string, error) {
	if isFileURL(ref) {
		return resolveFileURL(ref)
	}
	return resolveLocalPath(ref)
}

func resolveFileURL(ref string) (string, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("parse file url %q: %w", ref, err)
	}
	if u.Path == "" {
		return "", fmt.Errorf("file url %q has no path", ref)
	}
	return filepath.FromSlash(u.Path), nil
}

// resolveLocalPath expands a leading ~ to the caller's home directory and
// makes relative paths absolute against the current working directory.
func resolveLocalPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand %q: %w", path, err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	if filepath.IsAbs(path) {
		return path, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", path, err)
	}
	return abs, nil
}
