package assistant

import (
	"fmt"

	"dashcomposer/models"
)

const genericQuery = "SELECT * FROM data LIMIT 100"

// BuildSuggestion synthesizes a component descriptor from an intent. It
// always returns a value, even for unknown intents; the caller decides
// whether to surface it.
func BuildSuggestion(intent models.Intent) models.ComponentSuggestion {
	topic := intent.QueryTopic
	if topic == "" {
		topic = "data"
	}

	source := intent.DataSource
	if source == "" {
		source = "mysql"
	}

	return models.ComponentSuggestion{
		Name:          fmt.Sprintf("%s_%s", intent.ComponentType, topic),
		ComponentType: intent.ComponentType,
		Query:         queryFor(source, intent.QueryTopic),
		Fields:        fieldsFor(intent.ComponentType),
		Interval:      intent.Interval,
		DataSource:    source,
		Description: fmt.Sprintf("A %s showing %s data from %s",
			intent.ComponentType, topic, source),
	}
}

// queryFor picks a source-specific query template. Topics without a
// template fall back to a generic select-all.
func queryFor(source, topic string) string {
	switch source {
	case "mysql":
		switch topic {
		case "sales":
			return "SELECT * FROM sales ORDER BY created_at DESC LIMIT 100"
		case "revenue":
			return "SELECT * FROM revenue ORDER BY created_at DESC LIMIT 100"
		case "users":
			return "SELECT * FROM users ORDER BY created_at DESC LIMIT 100"
		case "orders":
			return "SELECT * FROM orders ORDER BY created_at DESC LIMIT 100"
		}
		return genericQuery
	case "mongodb":
		collection := topic
		if collection == "" {
			collection = "data"
		}
		return fmt.Sprintf(`{"collection": "%s", "filter": {}, "sort": {"_id": -1}, "limit": 100}`, collection)
	case "csv":
		filename := topic
		if filename == "" {
			filename = "data"
		}
		return filename + ".csv"
	}
	return genericQuery
}

// fieldsFor returns the fixed display configuration for a component
// type. Charts get axes, tables get columns and flags, metrics get a
// numeric display with a currency prefix.
func fieldsFor(componentType string) map[string]interface{} {
	switch componentType {
	case "chart":
		return map[string]interface{}{
			"x_axis":     "id",
			"y_axis":     "value",
			"chart_type": "line",
		}
	case "table":
		return map[string]interface{}{
			"columns":    []string{"id", "value"},
			"sortable":   true,
			"searchable": true,
		}
	case "metric":
		return map[string]interface{}{
			"display_format": "number",
			"prefix":         "$",
			"suffix":         "",
		}
	}
	return map[string]interface{}{}
}
