// Package pathutil normalizes and canonicalizes file paths for diagnostics.
package pathutil

import "strings"

// FromNative converts a native-separator path (backslashes on Windows) to
// the forward-slash form used internally for comparison and storage.
func FromNative(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

// ToNative converts an internal forward-slash path to the platform's
// native separator.
func ToNative(path string, windows bool) string {
	if !windows {
		return path
	}
	return strings.ReplaceAll(path, "/", "\\")
}

// Simplify collapses "./" segments, resolves "../" against the preceding
// segment, and removes duplicate slashes, without touching the
// filesystem. It mirrors cppcheck's Path::simplifyPath: purely lexical,
// so it never resolves symlinks or checks existence.
func Simplify(path string) string {
	if path == "" {
		return path
	}
	p := FromNative(path)

	absolute := strings.HasPrefix(p, "/")

	segments := strings.Split(p, "/")
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		switch seg {
		case "", ".":
			continue
		case "..":
			if len(out) > 0 && out[len(out)-1] != ".." {
				out = out[:len(out)-1]
				continue
			}
			if absolute {
				continue
			}
			out = append(out, seg)
		default:
			out = append(out, seg)
		}
	}

	result := strings.Join(out, "/")
	if absolute {
		result = "/" + result
	}
	if result == "" {
		result = "."
	}
	return result
}
