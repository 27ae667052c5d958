package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// JSONParser reads the JSON equivalent of the YAML layout.
type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

func (p *JSONParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		messages, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected an object, got %T", ErrFailedToParseJSON, lang, val)
		}
		result[lang] = messages
	}
	return result, nil
}

func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return hasExtension(ext, "json")
}
