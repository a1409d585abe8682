package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSONStructuredObject(t *testing.T) {
	out := ExtractJSON(`{"action": "add_chart", "component_type": "chart", "interval": "10 min"}`)
	assert.Equal(t, "add_chart", out["action"])
	assert.Equal(t, "chart", out["component_type"])
	assert.Equal(t, "10 min", out["interval"])
}

func TestExtractJSONEmbeddedInProse(t *testing.T) {
	text := `The user wants a chart. Here is the structured intent:
{"action": "add_chart", "query_topic": "sales"}
Proceeding to the next step.`

	out := ExtractJSON(text)
	assert.Equal(t, "add_chart", out["action"])
	assert.Equal(t, "sales", out["query_topic"])
}

func TestExtractJSONNestedObject(t *testing.T) {
	out := ExtractJSON(`{"action": "add_table", "fields": {"sortable": true}}`)
	assert.Equal(t, "add_table", out["action"])
	fields, ok := out["fields"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, true, fields["sortable"])
}

func TestExtractJSONKeyValueFallback(t *testing.T) {
	// No parseable JSON object, falls back to key-value scraping.
	out := ExtractJSON(`action: "add_metric", count: 3, enabled: true`)
	assert.Equal(t, "add_metric", out["action"])
	assert.Equal(t, 3, out["count"])
	assert.Equal(t, true, out["enabled"])
}

func TestExtractJSONEmptyInput(t *testing.T) {
	assert.Empty(t, ExtractJSON(""))
	assert.Empty(t, ExtractJSON("no structure here at all"))
}

func TestCoerceValue(t *testing.T) {
	assert.Equal(t, true, coerceValue("true"))
	assert.Equal(t, false, coerceValue("False"))
	assert.Equal(t, 42, coerceValue("42"))
	assert.Equal(t, 3.5, coerceValue("3.5"))
	assert.Equal(t, "sales", coerceValue("sales"))
}
