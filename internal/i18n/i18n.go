// Package i18n provides translations backed by embedded JSON locale files.
//
// Keys are dotted paths into the locale document ("errors.generic") and
// messages may carry {placeholder} markers substituted at lookup time.
// A missing locale, key, or non-string value resolves to the key itself.
package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
)

//go:embed locales/*.json
var localeFS embed.FS

const DefaultLocale = "en"

// Bundle holds every loaded locale.
type Bundle struct {
	locales map[string]map[string]any
	def     string
	log     *slog.Logger
}

// BundleOption configures the Bundle
type BundleOption func(*Bundle)

// WithDefaultLocale sets the locale used when none is requested
func WithDefaultLocale(locale string) BundleOption {
	return func(b *Bundle) { b.def = locale }
}

// WithLogger sets the logger
func WithLogger(log *slog.Logger) BundleOption {
	return func(b *Bundle) { b.log = log }
}

// NewBundle loads all embedded locale files.
func NewBundle(opts ...BundleOption) (*Bundle, error) {
	b := &Bundle{
		locales: make(map[string]map[string]any),
		def:     DefaultLocale,
		log:     slog.Default(),
	}

	for _, opt := range opts {
		opt(b)
	}

	entries, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("failed to read locales: %w", err)
	}

	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".json")

		data, err := fs.ReadFile(localeFS, "locales/"+entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read locale %q: %w", name, err)
		}

		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse locale %q: %w", name, err)
		}

		b.locales[name] = doc
	}

	if _, ok := b.locales[b.def]; !ok {
		return nil, fmt.Errorf("default locale %q not found", b.def)
	}

	return b, nil
}

// Locales returns the names of every loaded locale.
func (b *Bundle) Locales() []string {
	names := make([]string, 0, len(b.locales))
	for name := range b.locales {
		names = append(names, name)
	}
	return names
}

// Default returns the name of the default locale.
func (b *Bundle) Default() string {
	return b.def
}

// Has reports whether a locale is loaded.
func (b *Bundle) Has(locale string) bool {
	_, ok := b.locales[locale]
	return ok
}

// Translator returns a Translator for the given locale, falling back to
// the default locale when the requested one is not loaded.
func (b *Bundle) Translator(locale string) *Translator {
	if !b.Has(locale) {
		if locale != "" {
			b.log.Warn("Locale not found, using default", slog.String("locale", locale))
		}
		locale = b.def
	}
	return &Translator{bundle: b, locale: locale}
}

// Section returns a flattened key-to-message map for a subtree of the
// locale document, e.g. Section("en", "features"). Used to inject the
// feature descriptions into the demo page.
func (b *Bundle) Section(locale, key string) map[string]string {
	t := b.Translator(locale)

	node := lookup(b.locales[t.locale], key)
	section, ok := node.(map[string]any)
	if !ok {
		return map[string]string{}
	}

	out := make(map[string]string, len(section))
	for k, v := range section {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

// Translator resolves messages for a single locale.
type Translator struct {
	bundle *Bundle
	locale string
}

// Locale returns the translator's locale.
func (t *Translator) Locale() string {
	return t.locale
}

// T translates a dotted key, substituting {name} markers from the
// alternating key-value args, e.g. T("hello_to", "name", "Luis").
// Returns the key itself when no translation exists.
func (t *Translator) T(key string, args ...string) string {
	if t == nil {
		return key
	}

	node := lookup(t.bundle.locales[t.locale], key)
	if node == nil {
		t.bundle.log.Warn("Translation key not found",
			slog.String("key", key),
			slog.String("locale", t.locale))
		return key
	}

	message, ok := node.(string)
	if !ok {
		t.bundle.log.Warn("Translation key is not a string", slog.String("key", key))
		return key
	}

	for i := 0; i+1 < len(args); i += 2 {
		message = strings.ReplaceAll(message, "{"+args[i]+"}", args[i+1])
	}
	return message
}

// lookup walks a dotted key through nested locale maps.
func lookup(doc map[string]any, key string) any {
	var node any = doc
	for _, part := range strings.Split(key, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return nil
		}
		node, ok = m[part]
		if !ok {
			return nil
		}
	}
	return node
}

type contextKey struct{}

// NewContext returns a context carrying the translator.
func NewContext(ctx context.Context, t *Translator) context.Context {
	return context.WithValue(ctx, contextKey{}, t)
}

// FromContext returns the translator stored in the context, or nil.
func FromContext(ctx context.Context) *Translator {
	t, _ := ctx.Value(contextKey{}).(*Translator)
	return t
}
