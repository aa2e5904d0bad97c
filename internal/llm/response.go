package llm

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"doclens/internal/domain"
)

// llmConfidence is the confidence assigned to every LLM-derived field.
const llmConfidence = 0.9

// FieldsFromResponse turns a raw model response into Field records. The
// response is expected to contain one JSON object, possibly wrapped in
// stray prose or markdown fences; anything outside the outermost braces is
// discarded before decoding.
func FieldsFromResponse(raw string) ([]domain.Field, error) {
	payload, err := extractJSONObject(raw)
	if err != nil {
		return nil, err
	}

	var obj map[string]any
	if err := json.Unmarshal(payload, &obj); err != nil {
		return nil, fmt.Errorf("decoding LLM JSON: %w", err)
	}

	return FlattenObject(obj), nil
}

// extractJSONObject strips code fences and surrounding text, returning the
// outermost {...} span.
func extractJSONObject(raw string) ([]byte, error) {
	s := strings.TrimSpace(raw)
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in LLM response (raw: %s)", truncate(s, 200))
	}
	return []byte(s[start : end+1]), nil
}

// FlattenObject converts a decoded JSON object into flat Field records:
// strings kept, string arrays joined with ", ", arrays of objects and
// nested objects serialized, numbers formatted, nulls and empty strings
// skipped. Keys are emitted in sorted order so output is deterministic.
func FlattenObject(obj map[string]any) []domain.Field {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var fields []domain.Field
	for _, key := range keys {
		value, ok := flattenValue(obj[key])
		if !ok {
			continue
		}
		fields = append(fields, domain.NewField(key, value, llmConfidence, domain.SourceLLM))
	}
	return fields
}

func flattenValue(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		s := strings.TrimSpace(t)
		return s, s != ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	case []any:
		return flattenArray(t)
	case map[string]any:
		if len(t) == 0 {
			return "", false
		}
		b, err := json.Marshal(t)
		if err != nil {
			return "", false
		}
		return string(b), true
	default:
		return "", false
	}
}

func flattenArray(arr []any) (string, bool) {
	if len(arr) == 0 {
		return "", false
	}
	allStrings := true
	for _, item := range arr {
		if _, ok := item.(string); !ok {
			allStrings = false
			break
		}
	}
	if allStrings {
		parts := make([]string, 0, len(arr))
		for _, item := range arr {
			if s := strings.TrimSpace(item.(string)); s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, ", "), true
	}
	b, err := json.Marshal(arr)
	if err != nil {
		return "", false
	}
	return string(b), true
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
