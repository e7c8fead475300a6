package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var errMalformed = errors.New("malformed response")

// parsePayload extracts a JSON object from completion text. It tolerates markdown fences,
// prose around the object and the {"response": "...", "status": ...} envelope some providers use.
func parsePayload(content string) (Payload, error) {
	text := strings.TrimSpace(content)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var payload Payload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		start := strings.Index(text, "{")
		end := strings.LastIndex(text, "}")
		if start == -1 || end <= start {
			return nil, fmt.Errorf("%w: no json object found", errMalformed)
		}
		if err := json.Unmarshal([]byte(text[start:end+1]), &payload); err != nil {
			return nil, fmt.Errorf("%w: failed to parse json: %v", errMalformed, err)
		}
	}
	if payload == nil {
		return nil, fmt.Errorf("%w: empty json object", errMalformed)
	}

	// unwrap {response, status} envelope
	if inner, ok := payload["response"]; ok && len(payload) <= 3 {
		switch v := inner.(type) {
		case map[string]any:
			return v, nil
		case string:
			if unwrapped, err := parsePayload(v); err == nil {
				return unwrapped, nil
			}
		}
	}
	return payload, nil
}
