package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalid is the sentinel wrapped by every validation failure so
// handlers can map them to a 400.
var ErrInvalid = errors.New("validation failed")

var componentTypes = map[string]bool{
	"chart":  true,
	"table":  true,
	"metric": true,
}

var dataSources = map[string]bool{
	"mysql":   true,
	"mongodb": true,
	"csv":     true,
}

// Intervals are stored normalized as "<N> <unit>".
var intervalPattern = regexp.MustCompile(`^\d+ (min|hour|day)$`)

func Name(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if len(name) > 255 {
		return fmt.Errorf("%w: name must be 255 characters or fewer", ErrInvalid)
	}
	return nil
}

func ComponentType(componentType string) error {
	if !componentTypes[componentType] {
		return fmt.Errorf("%w: component_type must be one of chart, table, metric", ErrInvalid)
	}
	return nil
}

func DataSource(dataSource string) error {
	if !dataSources[dataSource] {
		return fmt.Errorf("%w: data_source must be one of mysql, mongodb, csv", ErrInvalid)
	}
	return nil
}

// Interval accepts an empty value (manual refresh) or a normalized
// "<N> <unit>" string.
func Interval(interval string) error {
	if interval == "" {
		return nil
	}
	if !intervalPattern.MatchString(interval) {
		return fmt.Errorf("%w: interval must look like \"10 min\", \"1 hour\" or \"1 day\"", ErrInvalid)
	}
	return nil
}
