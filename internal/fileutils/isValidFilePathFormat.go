package fileutils

import "regexp"

var validPathPattern = regexp.MustCompile(`^([a-zA-Z]:\\|/)?([^<>:"/\\|?*\n]+[/\\])*([^<>:"/\\|?*\n]+)?$`)

// IsValidFilePathFormat checks if the given string is formatted like a file path.
func IsValidFilePathFormat(path string) bool {
	if path == "" {
		return false
	}
	if path == "/" {
		return true
	}
	return validPathPattern.MatchString(path)
}
