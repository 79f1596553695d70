package doctor

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/hboehmecke/hbai-mon/internal/messages"
)

// DefaultDiffMaxLines caps the diff shown for a drifted file.
const DefaultDiffMaxLines = 40

// renderDiff returns a unified diff of current against expected, cut to
// maxLines and newline terminated. Identical inputs yield "".
func renderDiff(name string, current string, expected string, maxLines int) string {
	if maxLines <= 0 {
		maxLines = DefaultDiffMaxLines
	}
	diff := udiff.Unified(name+" (installed)", name+" (expected)", current, expected)
	trimmed := strings.TrimRight(diff, "\n")
	if trimmed == "" {
		return ""
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) > maxLines {
		lines = append(lines[:maxLines], fmt.Sprintf(messages.DoctorDiffTruncatedFmt, maxLines))
	}
	return strings.Join(lines, "\n") + "\n"
}
