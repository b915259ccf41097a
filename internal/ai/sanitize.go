// internal/ai/sanitize.go
package ai

import "strings"

// Sanitize strips markdown code-fence markers from a completion and
// trims surrounding whitespace. It does not validate that the result
// is JSON; that is the parser's job. Idempotent.
func Sanitize(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
