package prompt

import (
	"encoding/json"
	"strings"
)

// ExtractJSON pulls a JSON object out of free-form LLM text. Models often
// wrap their output in markdown code fences or surround it with prose, so
// fences are stripped and the text between the first "{" and the last "}" is
// taken. Returns false when no valid JSON object can be found.
func ExtractJSON(text string) (json.RawMessage, bool) {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```JSON", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return nil, false
	}

	candidate := json.RawMessage(cleaned[start : end+1])
	if !json.Valid(candidate) {
		return nil, false
	}
	return candidate, true
}
