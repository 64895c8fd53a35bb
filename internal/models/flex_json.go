package models

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"
)

// matchFieldMap caches JSON tag -> struct field index mappings
var (
	matchFieldMap     map[string]int
	matchFieldMapOnce sync.Once
)

// Accepted date layouts, most specific first. Sackmann CSV exports use YYYYMMDD.
var matchDateLayouts = []string{time.RFC3339, "2006-01-02", "20060102"}

func getMatchFieldMap() map[string]int {
	matchFieldMapOnce.Do(func() {
		t := reflect.TypeOf(Match{})
		matchFieldMap = make(map[string]int, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			tag := t.Field(i).Tag.Get("json")
			if tag == "" || tag == "-" {
				continue
			}
			name := strings.Split(tag, ",")[0]
			matchFieldMap[name] = i
		}
	})
	return matchFieldMap
}

// ParseMatchDate parses the date formats seen in result feeds and CSV exports.
func ParseMatchDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range matchDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid match date %q", s)
}

// UnmarshalJSON accepts both native JSON types and string-encoded values, so
// feeds that quote every column ("best_of": "5", "date": "20230611") decode
// into the same Match.
func (m *Match) UnmarshalJSON(data []byte) error {
	// Alias prevents infinite recursion
	type Alias Match
	a := (*Alias)(m)

	// Fast path: try standard unmarshal (works when all types match natively)
	if err := json.Unmarshal(data, a); err == nil {
		return nil
	}

	// Slow path: field-by-field with string-to-native coercion
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("flex unmarshal: %w", err)
	}

	fieldMap := getMatchFieldMap()
	v := reflect.ValueOf(a).Elem()

	for key, rawVal := range raw {
		idx, ok := fieldMap[key]
		if !ok {
			continue
		}

		fv := v.Field(idx)
		if !fv.CanSet() {
			continue
		}

		if key == "date" {
			d, err := decodeMatchDate(rawVal)
			if err != nil {
				return err
			}
			fv.Set(reflect.ValueOf(d))
			continue
		}

		ptr := reflect.New(fv.Type())
		if err := json.Unmarshal(rawVal, ptr.Interface()); err == nil {
			fv.Set(ptr.Elem())
			continue
		}

		if len(rawVal) > 1 && rawVal[0] == '"' {
			var s string
			if err := json.Unmarshal(rawVal, &s); err != nil {
				continue
			}
			if s == "" {
				continue
			}
			coerceStringToField(fv, s)
		}
	}

	return nil
}

// decodeMatchDate handles "2023-06-11", "20230611" and the bare number 20230611.
func decodeMatchDate(raw json.RawMessage) (time.Time, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return time.Time{}, fmt.Errorf("invalid match date %s", string(raw))
		}
		s = n.String()
	}
	return ParseMatchDate(s)
}

// coerceStringToField converts a string value to the field's native type.
func coerceStringToField(fv reflect.Value, s string) {
	switch fv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		// ParseFloat handles "5.0" -> truncate to int
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			fv.SetInt(int64(n))
		}
	case reflect.Float32, reflect.Float64:
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			fv.SetFloat(n)
		}
	case reflect.String:
		fv.SetString(s)
	}
}
