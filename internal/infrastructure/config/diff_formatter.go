package config

import (
	"fmt"
	"strings"
)

// FormatChangesAsDiff returns changes formatted as a diff for display.
func FormatChangesAsDiff(changes []KeyChange) string {
	if len(changes) == 0 {
		return "No changes detected."
	}

	var sb strings.Builder
	sb.WriteString("Config migration changes:\n\n")

	for _, change := range changes {
		switch change.Type {
		case KeyChangeAdded:
			sb.WriteString(fmt.Sprintf("  + %s = %s\n", change.Key, change.Value))
		case KeyChangeRemoved:
			sb.WriteString(fmt.Sprintf("  - %s = %s (no longer read)\n", change.Key, change.Value))
		}
	}

	return sb.String()
}
