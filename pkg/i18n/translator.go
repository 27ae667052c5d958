package i18n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Translator looks up message templates by language and dot-separated key
// and fills their %{name} placeholders.
type Translator struct {
	mu             sync.RWMutex
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	adapter        TranslationAdapter
}

// NewTranslator loads translations from adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
		adapter:       adapter,
	}
	for _, option := range options {
		option(t)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload reads the adapter again and swaps the translations in place.
// On error the previous translations stay active.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}
	normalized, err := normalizeTranslations(translations)
	if err != nil {
		return err
	}

	t.mu.Lock()
	t.translations = normalized
	langs := t.supportedLanguages()
	t.mu.Unlock()

	t.logger.InfoContext(ctx, "translations loaded", slog.Any("languages", langs))
	return nil
}

// normalizeTranslations lower-cases language codes and rejects empty ones.
func normalizeTranslations(trans map[string]map[string]any) (map[string]map[string]any, error) {
	out := make(map[string]map[string]any, len(trans))
	for lang, messages := range trans {
		code := strings.ToLower(strings.TrimSpace(lang))
		if code == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidTranslations)
		}
		if messages == nil {
			return nil, fmt.Errorf("%w: nil translations for language %q", ErrInvalidTranslations, lang)
		}
		if existing, ok := out[code]; ok {
			maps.Copy(existing, messages)
			continue
		}
		out[code] = maps.Clone(messages)
	}
	return out, nil
}

func (t *Translator) supportedLanguages() []string {
	return slices.Sorted(maps.Keys(t.translations))
}

// SupportedLanguages returns the loaded language codes in sorted order.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the language used when a requested one is not loaded.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Resolve maps lang to a loaded language: an exact match, then its base
// language ("de-AT" to "de"), then the default language.
func (t *Translator) Resolve(lang string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	code, _ := t.resolve(lang)
	return code
}

func (t *Translator) resolve(lang string) (string, bool) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if _, ok := t.translations[lang]; ok {
		return lang, true
	}
	if base, _, found := strings.Cut(lang, "-"); found {
		if _, ok := t.translations[base]; ok {
			return base, true
		}
	}
	_, ok := t.translations[t.defaultLang]
	return t.defaultLang, ok
}

// lookup traverses the nested map using dot-separated keys, e.g.
// "validation.too_long" reads m["validation"]["too_long"].
func lookup(m map[string]any, key string) (any, bool) {
	if v, ok := m[key]; ok {
		return v, true
	}

	current := m
	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}
	return nil, false
}

// template returns the string stored under key for lang or its fallbacks.
func (t *Translator) template(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	code, ok := t.resolve(lang)
	if !ok {
		return "", false
	}
	val, ok := lookup(t.translations[code], key)
	if !ok && code != t.defaultLang {
		val, ok = lookup(t.translations[t.defaultLang], key)
	}
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

func (t *Translator) missing(lang, key string) {
	if t.missingLogMode {
		t.logger.Warn("translation not found", logger.Lang(lang), slog.String("key", key))
	}
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

func namedSprintf(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

// pairs turns key, value, key, value... into a map. A trailing odd
// argument is ignored.
func pairs(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

// T translates key for lang, substituting key-value pairs from args:
//
//	tr.T("de", "greeting", "name", "Karl")
//
// Missing translations return the key itself, or "" when fallback to the
// key is disabled.
func (t *Translator) T(lang, key string, args ...string) string {
	tmpl, ok := t.template(lang, key)
	if !ok {
		t.missing(lang, key)
		if t.fallbackToKey {
			return namedSprintf(key, pairs(args))
		}
		return ""
	}
	return namedSprintf(tmpl, pairs(args))
}

// N translates a plural key. It reads key+".zero" (n == 0, falling back to
// ".other"), key+".one" (n == 1) or key+".other", and adds n as "count"
// unless args already carry it.
func (t *Translator) N(lang, key string, n int, args ...string) string {
	params := pairs(args)
	if _, ok := params["count"]; !ok {
		params["count"] = strconv.Itoa(n)
	}

	var candidates []string
	switch n {
	case 0:
		candidates = []string{key + ".zero", key + ".other"}
	case 1:
		candidates = []string{key + ".one"}
	default:
		candidates = []string{key + ".other"}
	}
	candidates = append(candidates, key)

	for _, k := range candidates {
		if tmpl, ok := t.template(lang, k); ok {
			return namedSprintf(tmpl, params)
		}
	}

	t.missing(lang, key)
	if t.fallbackToKey {
		return namedSprintf(key, params)
	}
	return ""
}

// Tc translates key in the language stored in ctx by Middleware.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

// Func returns a lookup for validator.ValidationError.Translate. Keys without
// a translation yield "", so the error keeps its built-in English message.
func (t *Translator) Func(lang string) func(key string, values map[string]any) string {
	return func(key string, values map[string]any) string {
		tmpl, ok := t.template(lang, key)
		if !ok {
			t.missing(lang, key)
			return ""
		}
		params := make(map[string]string, len(values))
		for k, v := range values {
			params[k] = fmt.Sprint(v)
		}
		return namedSprintf(tmpl, params)
	}
}

// translatable is satisfied by single-value errors such as *form.Invalid.
type translatable interface {
	error
	Translate(fn func(key string, values map[string]any) string) string
}

// TranslateErrors groups the messages of err by field in lang. Other errors
// are returned under "_form", translated when they carry a translation key.
func (t *Translator) TranslateErrors(lang string, err error) map[string][]string {
	if err == nil {
		return nil
	}
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		return verrs.Messages(t.Func(lang))
	}

	var te translatable
	if errors.As(err, &te) {
		return map[string][]string{"_form": {te.Translate(t.Func(lang))}}
	}
	return map[string][]string{"_form": {err.Error()}}
}
