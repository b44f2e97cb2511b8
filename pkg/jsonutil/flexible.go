package jsonutil

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexibleIntValue converts a json.RawMessage to an int pointer, handling
// cases where LLMs return numbers as strings ("500") or with a decimal part.
// Returns nil for absent, null, or unparseable values.
func FlexibleIntValue(raw json.RawMessage) *int {
	f := FlexibleFloatValue(raw)
	if f == nil {
		return nil
	}
	v := int(*f)
	return &v
}

// FlexibleFloatValue converts a json.RawMessage to a float64 pointer,
// handling cases where LLMs return numbers as strings ("3.50", "$3.50").
// Returns nil for absent, null, or unparseable values.
func FlexibleFloatValue(raw json.RawMessage) *float64 {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	// Try number first
	var numVal float64
	if err := json.Unmarshal(raw, &numVal); err == nil {
		return &numVal
	}

	// Try a numeric string, tolerating currency symbols and separators
	var strVal string
	if err := json.Unmarshal(raw, &strVal); err == nil {
		cleaned := strings.TrimSpace(strings.Trim(strVal, "$€¥£ "))
		cleaned = strings.ReplaceAll(cleaned, ",", "")
		if parsed, err := strconv.ParseFloat(cleaned, 64); err == nil {
			return &parsed
		}
	}

	return nil
}

// FlexibleStringValue converts a json.RawMessage to a string, handling cases
// where LLMs return numbers or booleans instead of strings. Returns empty
// string for null/empty.
func FlexibleStringValue(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var strVal string
	if err := json.Unmarshal(raw, &strVal); err == nil {
		return strVal
	}

	var numVal float64
	if err := json.Unmarshal(raw, &numVal); err == nil {
		if numVal == float64(int64(numVal)) {
			return strconv.FormatInt(int64(numVal), 10)
		}
		return strconv.FormatFloat(numVal, 'g', -1, 64)
	}

	var boolVal bool
	if err := json.Unmarshal(raw, &boolVal); err == nil {
		return strconv.FormatBool(boolVal)
	}

	return string(raw)
}
