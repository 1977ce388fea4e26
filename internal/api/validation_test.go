package api

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daireto/phishing-url-detector/internal/i18n"
	"github.com/daireto/phishing-url-detector/internal/middleware"
)

func testTranslator(t *testing.T) *i18n.Translator {
	bundle, err := i18n.NewBundle(i18n.WithLogger(slog.New(slog.DiscardHandler)))
	require.NoError(t, err, "Should load embedded locales")
	return bundle.Translator("en")
}

func TestValidateURL_TableDriven(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expected    string
		expectError bool
		description string
	}{
		{
			name:        "PlainDomain",
			input:       "example.com",
			expected:    "http://example.com",
			description: "Prepend http:// when no scheme is present",
		},
		{
			name:        "HTTPSPreserved",
			input:       "https://example.com/login",
			expected:    "https://example.com/login",
			description: "Keep an explicit https scheme untouched",
		},
		{
			name:        "HTTPPreserved",
			input:       "http://example.com",
			expected:    "http://example.com",
			description: "Keep an explicit http scheme untouched",
		},
		{
			name:        "SurroundingWhitespace",
			input:       "  example.com  ",
			expected:    "http://example.com",
			description: "Trim whitespace before validating",
		},
		{
			name:        "DomainWithPort",
			input:       "example.com:8080/path",
			expected:    "http://example.com:8080/path",
			description: "Accept explicit ports",
		},
		{
			name:        "EmptyURL",
			input:       "",
			expectError: true,
			description: "Reject empty input",
		},
		{
			name:        "WhitespaceOnly",
			input:       "   ",
			expectError: true,
			description: "Reject whitespace-only input",
		},
		{
			name:        "TooLong",
			input:       "https://example.com/" + strings.Repeat("a", 2050),
			expectError: true,
			description: "Reject URLs over the length limit",
		},
		{
			name:        "FTPScheme",
			input:       "ftp://example.com",
			expectError: true,
			description: "Reject non-HTTP schemes",
		},
		{
			name:        "FileScheme",
			input:       "file:///etc/passwd",
			expectError: true,
			description: "Reject the file scheme",
		},
		{
			name:        "Localhost",
			input:       "localhost",
			expectError: true,
			description: "Reject hostnames without a dot",
		},
		{
			name:        "LocalhostWithScheme",
			input:       "http://localhost:8080",
			expectError: true,
			description: "Reject localhost regardless of scheme and port",
		},
		{
			name:        "MissingHostname",
			input:       "https://",
			expectError: true,
			description: "Reject URLs without a hostname",
		},
		{
			name:        "EmptyHostnameWithPort",
			input:       "https://:8080",
			expectError: true,
			description: "Reject empty hostname with port",
		},
		{
			name:        "LeadingDot",
			input:       "http://.example.com",
			expectError: true,
			description: "Reject hostnames starting with a dot",
		},
		{
			name:        "TrailingDot",
			input:       "http://example.com.",
			expectError: true,
			description: "Reject hostnames ending with a dot",
		},
		{
			name:        "DoubleDot",
			input:       "https://invalid..hostname",
			expectError: true,
			description: "Reject hostnames with consecutive dots",
		},
	}

	tr := testTranslator(t)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			normalized, err := validateURL(tr, tc.input)

			if tc.expectError {
				assert.Error(t, err, tc.description)
				_, ok := middleware.AsValidationError(err)
				assert.True(t, ok, "Validation failures should be validation errors")
				return
			}

			assert.NoError(t, err, tc.description)
			assert.Equal(t, tc.expected, normalized, tc.description)
		})
	}
}
