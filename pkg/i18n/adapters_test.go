package i18n_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/i18n"
)

func TestFSAdapter(t *testing.T) {
	fsys := fstest.MapFS{
		"tr/a.yaml":    {Data: []byte("de:\n  validation:\n    empty: \"Leer\"\n    missing: \"Fehlt\"\n")},
		"tr/b.json":    {Data: []byte(`{"de": {"validation": {"empty": "Bitte ausfüllen"}}, "fr": {"hi": "Salut"}}`)},
		"tr/notes.txt": {Data: []byte("ignored")},
	}

	data, err := (&i18n.FSAdapter{FS: fsys, Dir: "tr"}).Load(context.Background())
	require.NoError(t, err)

	validation := data["de"]["validation"].(map[string]any)
	assert.Equal(t, "Bitte ausfüllen", validation["empty"], "later file wins")
	assert.Equal(t, "Fehlt", validation["missing"], "nested keys are merged")
	assert.Equal(t, "Salut", data["fr"]["hi"])
}

func TestFSAdapterErrors(t *testing.T) {
	_, err := (&i18n.FSAdapter{FS: fstest.MapFS{}, Dir: "missing"}).Load(context.Background())
	assert.ErrorIs(t, err, i18n.ErrFailedToReadDir)

	_, err = (&i18n.FSAdapter{FS: fstest.MapFS{"tr/x.txt": {Data: []byte("x")}}, Dir: "tr"}).Load(context.Background())
	assert.ErrorIs(t, err, i18n.ErrNoTranslations)

	_, err = (&i18n.FSAdapter{FS: fstest.MapFS{"tr/x.yaml": {Data: []byte("de: [1, 2]")}}, Dir: "tr"}).Load(context.Background())
	assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = (&i18n.FSAdapter{FS: fstest.MapFS{"tr/x.yaml": {Data: []byte("de: {}")}}, Dir: "tr"}).Load(ctx)
	assert.ErrorIs(t, err, i18n.ErrLoadingCancelled)
}

func TestDirectoryAndFileAdapters(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "de.yaml")
	require.NoError(t, os.WriteFile(path, []byte("de:\n  hi: Hallo\n"), 0o600))

	data, err := i18n.NewDirectoryAdapter(dir).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Hallo", data["de"]["hi"])

	data, err = i18n.NewFileAdapter(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Hallo", data["de"]["hi"])

	_, err = i18n.NewFileAdapter(filepath.Join(dir, "nope.yaml")).Load(context.Background())
	assert.ErrorIs(t, err, i18n.ErrFailedToReadFile)

	txt := filepath.Join(dir, "de.txt")
	require.NoError(t, os.WriteFile(txt, []byte("x"), 0o600))
	_, err = i18n.NewFileAdapter(txt).Load(context.Background())
	assert.ErrorIs(t, err, i18n.ErrUnsupportedFormat)
}

func TestMultiAdapter(t *testing.T) {
	data, err := i18n.MultiAdapter{
		i18n.DefaultAdapter(),
		&i18n.MapAdapter{Data: map[string]map[string]any{
			"de": {"validation": map[string]any{"empty": "Pflichtfeld"}},
		}},
		nil,
	}.Load(context.Background())
	require.NoError(t, err)

	validation := data["de"]["validation"].(map[string]any)
	assert.Equal(t, "Pflichtfeld", validation["empty"])
	assert.Equal(t, "Wert fehlt", validation["missing"])
}

func TestParsers(t *testing.T) {
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("de.yml"))
	assert.IsType(t, &i18n.JSONParser{}, i18n.NewParserForFile("de.JSON"))
	assert.Nil(t, i18n.NewParserForFile("de.toml"))

	_, err := i18n.NewJSONParser().Parse(context.Background(), []byte("{"))
	assert.ErrorIs(t, err, i18n.ErrFailedToParseJSON)

	_, err = i18n.NewJSONParser().Parse(context.Background(), []byte(`{"de": "x"}`))
	assert.ErrorIs(t, err, i18n.ErrFailedToParseJSON)
}
