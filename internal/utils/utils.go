package utils

import (
	"strconv"
	"strings"
)

// TruncateForLog shortens the provided string to the specified limit, appending an ellipsis when truncated.
func TruncateForLog(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// TruncateListForLog keeps the first limit items and replaces the remainder
// with a single "+N more" marker.
func TruncateListForLog(items []string, limit int) []string {
	if limit <= 0 || len(items) <= limit {
		return items
	}
	out := make([]string, 0, limit+1)
	out = append(out, items[:limit]...)
	return append(out, "+"+strconv.Itoa(len(items)-limit)+" more")
}
