package suggestion

import (
	"regexp"
	"strings"
)

// listMarkerRe matches a leading list marker such as "1.", "2)", "-" or "•".
var listMarkerRe = regexp.MustCompile(`^\s*(?:\d+[.)]|[-•*])\s*`)

// CleanItems strips list markers and blank lines from provider output and
// caps the result at max items. A non-positive max means no cap.
func CleanItems(raw []string, max int) []string {
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		for _, line := range strings.Split(item, "\n") {
			line = strings.TrimSpace(listMarkerRe.ReplaceAllString(line, ""))
			if line == "" {
				continue
			}
			out = append(out, line)
			if max > 0 && len(out) == max {
				return out
			}
		}
	}
	return out
}
