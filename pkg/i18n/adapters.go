package i18n

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
)

// TranslationAdapter loads language code -> nested messages.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FSAdapter reads every YAML and JSON file in Dir of FS, in name order.
// Later files override the keys they repeat.
type FSAdapter struct {
	FS  fs.FS
	Dir string
}

// NewDirectoryAdapter reads translation files from a directory on disk.
func NewDirectoryAdapter(dir string) *FSAdapter {
	return &FSAdapter{FS: os.DirFS(dir), Dir: "."}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	dir := a.Dir
	if dir == "" {
		dir = "."
	}

	entries, err := fs.ReadDir(a.FS, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && NewParserForFile(e.Name()) != nil {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslations, dir)
	}

	all := make(map[string]map[string]any)
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}
		if err := loadFile(ctx, a.FS, path.Join(dir, name), all); err != nil {
			return nil, err
		}
	}
	return all, nil
}

// FileAdapter reads a single translation file from disk.
type FileAdapter struct {
	Path string
}

func NewFileAdapter(path string) *FileAdapter {
	return &FileAdapter{Path: path}
}

func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	content, err := os.ReadFile(a.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFailedToReadFile, a.Path, err)
	}
	all := make(map[string]map[string]any)
	if err := parseInto(ctx, a.Path, content, all); err != nil {
		return nil, err
	}
	return all, nil
}

func loadFile(ctx context.Context, fsys fs.FS, name string, into map[string]map[string]any) error {
	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFailedToReadFile, name, err)
	}
	return parseInto(ctx, name, content, into)
}

func parseInto(ctx context.Context, name string, content []byte, into map[string]map[string]any) error {
	parser := NewParserForFile(name)
	if parser == nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}

	parsed, err := parser.Parse(ctx, content)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	for lang, messages := range parsed {
		if into[lang] == nil {
			into[lang] = make(map[string]any, len(messages))
		}
		mergeMessages(into[lang], messages)
	}
	return nil
}

//go:embed locales/*.yaml
var defaultLocales embed.FS

// DefaultAdapter serves the built-in translations of every validation message.
func DefaultAdapter() *FSAdapter {
	return &FSAdapter{FS: defaultLocales, Dir: "locales"}
}

// MultiAdapter merges the output of several adapters; later ones win.
type MultiAdapter []TranslationAdapter

func (m MultiAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	all := make(map[string]map[string]any)
	for _, a := range m {
		if a == nil {
			continue
		}
		data, err := a.Load(ctx)
		if err != nil {
			return nil, err
		}
		for lang, messages := range data {
			if all[lang] == nil {
				all[lang] = make(map[string]any, len(messages))
			}
			mergeMessages(all[lang], messages)
		}
	}
	return all, nil
}

// mergeMessages copies src into dst, merging nested maps instead of
// replacing them.
func mergeMessages(dst, src map[string]any) {
	for k, v := range src {
		sv, srcMap := v.(map[string]any)
		dv, dstMap := dst[k].(map[string]any)
		if srcMap && dstMap {
			mergeMessages(dv, sv)
			continue
		}
		if srcMap {
			cp := make(map[string]any, len(sv))
			mergeMessages(cp, sv)
			dst[k] = cp
			continue
		}
		dst[k] = v
	}
}
