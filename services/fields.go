package services

import (
	"encoding/json"
	"sort"
	"strings"

	"restaurant-management-api/apperr"
)

// checkWhitelist rejects partial updates that touch fields outside allowed.
func checkWhitelist(fields map[string]any, allowed ...string) error {
	if len(fields) == 0 {
		return apperr.New(apperr.CodeValidationFailed, "no fields to update")
	}
	ok := make(map[string]bool, len(allowed))
	for _, f := range allowed {
		ok[f] = true
	}
	var bad []string
	for k := range fields {
		if !ok[k] {
			bad = append(bad, k)
		}
	}
	if len(bad) > 0 {
		sort.Strings(bad)
		return apperr.New(apperr.CodeInvalidFields,
			"invalid fields: %s (allowed: %s)", strings.Join(bad, ", "), strings.Join(allowed, ", "))
	}
	return nil
}

func stringField(key string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", apperr.New(apperr.CodeValidationFailed, "%s must be a string", key)
	}
	return s, nil
}

func numberField(key string, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f, nil
		}
	}
	return 0, apperr.New(apperr.CodeValidationFailed, "%s must be a number", key)
}
