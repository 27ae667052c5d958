package i18n

import (
	"context"
	"path"
	"strings"
)

// Parser decodes a translation document into language code -> nested messages.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)
	// SupportsFileExtension accepts extensions with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile picks a parser by file extension, or nil when none fits.
func NewParserForFile(filename string) Parser {
	for _, p := range []Parser{NewYAMLParser(), NewJSONParser()} {
		if p.SupportsFileExtension(path.Ext(filename)) {
			return p
		}
	}
	return nil
}

func hasExtension(ext string, allowed ...string) bool {
	ext = strings.TrimPrefix(ext, ".")
	for _, a := range allowed {
		if strings.EqualFold(ext, a) {
			return true
		}
	}
	return false
}
