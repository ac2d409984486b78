package assistant

import (
	"encoding/json"
	"strings"
)

// ParseStructuredResponse pulls a StructuredResponse out of model output. A
// fenced block wins over a bare object. Text without any JSON comes back as a
// text-only response; JSON that does not decode yields nil.
func ParseStructuredResponse(text string) *StructuredResponse {
	if body, ok := fencedBlock(text); ok {
		return decodeStructured(body)
	}
	if start := strings.Index(text, "{"); start >= 0 {
		if end := strings.LastIndex(text, "}"); end > start {
			return decodeStructured(text[start : end+1])
		}
	}
	return &StructuredResponse{Text: text}
}

func fencedBlock(text string) (string, bool) {
	open := strings.Index(text, "```json")
	skip := len("```json")
	if open < 0 {
		open = strings.Index(text, "```")
		skip = len("```")
	}
	if open < 0 {
		return "", false
	}
	rest := text[open+skip:]
	end := strings.Index(rest, "```")
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}

func decodeStructured(raw string) *StructuredResponse {
	var resp StructuredResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil
	}
	return &resp
}
