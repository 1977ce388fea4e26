package i18n

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBundle(t *testing.T, opts ...BundleOption) *Bundle {
	t.Helper()
	opts = append(opts, WithLogger(slog.New(slog.DiscardHandler)))
	bundle, err := NewBundle(opts...)
	require.NoError(t, err, "Should load embedded locales")
	return bundle
}

func TestNewBundle(t *testing.T) {
	bundle := testBundle(t)

	assert.True(t, bundle.Has("en"), "English should be embedded")
	assert.True(t, bundle.Has("es"), "Spanish should be embedded")
	assert.Equal(t, "en", bundle.Default())
}

func TestNewBundle_UnknownDefaultLocale(t *testing.T) {
	_, err := NewBundle(
		WithDefaultLocale("xx"),
		WithLogger(slog.New(slog.DiscardHandler)),
	)
	assert.Error(t, err, "A default locale without a file should fail loading")
}

func TestTranslator_T(t *testing.T) {
	bundle := testBundle(t)

	testCases := []struct {
		name        string
		locale      string
		key         string
		args        []string
		expected    string
		description string
	}{
		{
			name:        "SimpleKey",
			locale:      "en",
			key:         "errors.url_required",
			expected:    "A URL is required",
			description: "Resolve a dotted key",
		},
		{
			name:        "Placeholder",
			locale:      "en",
			key:         "errors.url_too_long",
			args:        []string{"max", "2048"},
			expected:    "URL too long (max 2048 characters)",
			description: "Substitute {max} from the args",
		},
		{
			name:        "MissingKey",
			locale:      "en",
			key:         "errors.does_not_exist",
			expected:    "errors.does_not_exist",
			description: "Missing keys resolve to the key itself",
		},
		{
			name:        "NonLeafKey",
			locale:      "en",
			key:         "errors",
			expected:    "errors",
			description: "Non-string nodes resolve to the key itself",
		},
		{
			name:        "UnknownLocaleFallsBack",
			locale:      "fr",
			key:         "errors.url_required",
			expected:    "A URL is required",
			description: "Unknown locales fall back to the default",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tr := bundle.Translator(tc.locale)
			assert.Equal(t, tc.expected, tr.T(tc.key, tc.args...), tc.description)
		})
	}
}

func TestTranslator_NilSafe(t *testing.T) {
	var tr *Translator
	assert.Equal(t, "errors.generic", tr.T("errors.generic"), "A nil translator returns the key")
}

func TestBundle_Section(t *testing.T) {
	bundle := testBundle(t)

	badges := bundle.Section("en", "badge")
	assert.Equal(t, "Phishing", badges["phishing"])
	assert.Equal(t, "Legitimate", badges["legitimate"])

	features := bundle.Section("en", "features")
	assert.Contains(t, features, "has_ip", "Every feature key should have a description")
	assert.Contains(t, features, "many_redirects")

	assert.Empty(t, bundle.Section("en", "errors.url_required"), "A leaf node is not a section")
	assert.Empty(t, bundle.Section("en", "nope"), "An unknown key yields an empty section")
}

func TestContextRoundTrip(t *testing.T) {
	bundle := testBundle(t)
	tr := bundle.Translator("en")

	ctx := NewContext(context.Background(), tr)
	assert.Same(t, tr, FromContext(ctx), "The translator should round-trip through the context")

	assert.Nil(t, FromContext(context.Background()), "A bare context holds no translator")
}
