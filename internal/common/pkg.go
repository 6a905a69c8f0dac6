package common

import "strings"

// UnknownStr is the String() fallback for out-of-range enum values.
const UnknownStr = "unknown"

// LastSegment returns the final segment of a "::"-separated path.
// Returns empty string if path is empty.
func LastSegment(path string) string {
	if path == "" {
		return ""
	}

	if i := strings.LastIndex(path, "::"); i >= 0 {
		return path[i+2:]
	}

	return path
}

// JoinPath joins non-empty path segments with "::". A leading "::" on the
// first segment is kept so absolute paths stay absolute.
func JoinPath(segments ...string) string {
	var sb strings.Builder

	for _, s := range segments {
		if sb.Len() > 0 {
			s = strings.TrimLeft(s, ":")
		}

		s = strings.TrimRight(s, ":")
		if s == "" {
			continue
		}

		if sb.Len() > 0 {
			sb.WriteString("::")
		}

		sb.WriteString(s)
	}

	return sb.String()
}
