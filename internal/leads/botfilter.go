package leads

import "strings"

// IsBot reports whether the decoy field was filled in. Humans never see the
// field, so any non-blank value marks the submission as automated.
func IsBot(trap string) bool {
	return strings.TrimSpace(trap) != ""
}
