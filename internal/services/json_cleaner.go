package services

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	codeFence     = "```"
	jsonCodeFence = "```json"
)

// CleanJSONResponse strips the markdown code fence the model tends to wrap
// its JSON in. Only one leading fence (with or without the json tag) and one
// trailing fence are removed; fences inside the payload are left alone.
func CleanJSONResponse(text string) string {
	clean := strings.TrimSpace(text)

	if len(clean) >= len(jsonCodeFence) && strings.EqualFold(clean[:len(jsonCodeFence)], jsonCodeFence) {
		clean = clean[len(jsonCodeFence):]
	} else {
		clean = strings.TrimPrefix(clean, codeFence)
	}

	clean = strings.TrimSuffix(strings.TrimSpace(clean), codeFence)

	return strings.TrimSpace(clean)
}

// ParseJSONObject cleans the model output and checks it is a single JSON
// object. The returned bytes are the object as sent by the model.
func ParseJSONObject(text string) (json.RawMessage, error) {
	cleaned := []byte(CleanJSONResponse(text))

	if len(cleaned) == 0 || cleaned[0] != '{' {
		return nil, fmt.Errorf("%w: response is not a JSON object", ErrInvalidJSON)
	}

	var raw json.RawMessage
	if err := json.Unmarshal(cleaned, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	return raw, nil
}
