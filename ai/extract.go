package ai

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// JSON extraction from LLM free text is inherently best-effort. The
// precedence is fixed: a parseable JSON object wins, then loose
// key-value pairs, then an empty result. It never errors.

var jsonPatterns = []*regexp.Regexp{
	// Objects with one level of nesting.
	regexp.MustCompile(`\{[^{}]*(?:\{[^{}]*\}[^{}]*)*\}`),
	// Flat objects, shortest match.
	regexp.MustCompile(`(?s)\{.*?\}`),
}

var keyValuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`"([^"]+)"\s*:\s*"([^"]*)"`),
	regexp.MustCompile(`"([^"]+)"\s*:\s*([^,\s}]+)`),
	regexp.MustCompile(`([a-zA-Z_][a-zA-Z0-9_]*)\s*:\s*"([^"]*)"`),
	regexp.MustCompile(`([a-zA-Z_][a-zA-Z0-9_]*)\s*:\s*([^,\s}]+)`),
}

// ExtractJSON pulls a JSON object out of free text.
func ExtractJSON(text string) map[string]interface{} {
	if text == "" {
		return map[string]interface{}{}
	}

	for _, pattern := range jsonPatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			cleaned := strings.TrimSpace(match)
			if !strings.HasPrefix(cleaned, "{") || !strings.HasSuffix(cleaned, "}") {
				continue
			}
			var out map[string]interface{}
			if err := json.Unmarshal([]byte(cleaned), &out); err == nil {
				return out
			}
		}
	}

	return extractKeyValuePairs(text)
}

// extractKeyValuePairs scrapes key: value pairs when no JSON object
// parses, coercing obvious booleans and numbers.
func extractKeyValuePairs(text string) map[string]interface{} {
	pairs := map[string]interface{}{}

	for _, pattern := range keyValuePatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			key := strings.TrimSpace(match[1])
			raw := strings.Trim(strings.TrimSpace(match[2]), `"`)
			if key == "" {
				continue
			}
			pairs[key] = coerceValue(raw)
		}
	}

	return pairs
}

func coerceValue(raw string) interface{} {
	switch strings.ToLower(raw) {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}
