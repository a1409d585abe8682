package assistant

import (
	"regexp"
	"strings"

	"dashcomposer/models"
)

// The extractor is a single pass of ordered rule tables, first match wins
// per category. Categories are independent; no step backtracks and
// nothing here can fail - absence of a match degrades to an empty field,
// except the data source which defaults to mysql.

type componentRule struct {
	keyword       string
	componentType string
	action        string
}

// Checked in order; "kpi" is an alias for metric.
var componentRules = []componentRule{
	{"chart", "chart", models.ActionAddChart},
	{"table", "table", models.ActionAddTable},
	{"metric", "metric", models.ActionAddMetric},
	{"kpi", "metric", models.ActionAddMetric},
}

type keywordRule struct {
	keywords []string
	outcome  string
}

// mysql is checked first, so a message naming both mysql and mongodb
// resolves to mysql. A message naming no source at all also resolves to
// mysql, the default.
var sourceRules = []keywordRule{
	{[]string{"mysql", "sql", "database"}, "mysql"},
	{[]string{"mongo", "mongodb"}, "mongodb"},
	{[]string{"csv", "file"}, "csv"},
}

var topicRules = []string{"sales", "revenue", "users", "orders"}

// Alternation is leftmost-first, so "minutes" still captures unit "min".
var intervalPattern = regexp.MustCompile(`(\d+)\s*(min|hour|day)`)

// ExtractIntent turns a free-text message into a structured intent.
func ExtractIntent(message string) models.Intent {
	text := strings.ToLower(strings.TrimSpace(message))
	intent := models.Intent{Action: models.ActionUnknown}

	for _, rule := range componentRules {
		if strings.Contains(text, rule.keyword) {
			intent.Action = rule.action
			intent.ComponentType = rule.componentType
			break
		}
	}

	if m := intervalPattern.FindStringSubmatch(text); m != nil {
		intent.Interval = m[1] + " " + m[2]
	}

	for _, rule := range sourceRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(text, keyword) {
				intent.DataSource = rule.outcome
				break
			}
		}
		if intent.DataSource != "" {
			break
		}
	}
	if intent.DataSource == "" {
		intent.DataSource = "mysql"
	}

	for _, topic := range topicRules {
		if strings.Contains(text, topic) {
			intent.QueryTopic = topic
			break
		}
	}

	return intent
}
