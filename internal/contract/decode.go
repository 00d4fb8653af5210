package contract

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/snally-dev/camp-milestones/core/calendar"
)

// RawInputDecodeHook lets config files use native YAML values for string fields:
// a list such as [30, 60] becomes "30,60" and an unquoted date becomes "2024-01-10".
// Viper's default hooks still run after it.
func RawInputDecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		scalarStringHook,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

func scalarStringHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}
	switch v := data.(type) {
	case time.Time:
		return calendar.StartOfDay(v).String(), nil
	case []any:
		return joinValues(v), nil
	case []int:
		parts := make([]any, len(v))
		for i, n := range v {
			parts[i] = n
		}
		return joinValues(parts), nil
	case []string:
		return strings.Join(v, ","), nil
	default:
		return data, nil
	}
}

func joinValues(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strings.TrimSpace(fmt.Sprint(v))
	}
	return strings.Join(parts, ",")
}
