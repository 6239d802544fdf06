package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"eco-wardrobe/internal/stylist"
)

// stripFences removes a surrounding markdown code fence. Gemini
// sometimes wraps structured output in ```json fences even when asked
// for a bare document.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// decodeReply parses a Gemini text reply into out, tolerating fenced
// output. An empty or malformed reply yields ErrBadStylistReply.
func decodeReply(raw string, out any) error {
	doc := stripFences(raw)
	if doc == "" {
		return fmt.Errorf("%w: empty reply", stylist.ErrBadStylistReply)
	}
	if err := json.Unmarshal([]byte(doc), out); err != nil {
		return fmt.Errorf("%w: %v", stylist.ErrBadStylistReply, err)
	}
	return nil
}
