package extractor

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressBarFeatures_TableDriven(t *testing.T) {
	testCases := []struct {
		name        string
		rawURL      string
		expected    Features
		description string
	}{
		{
			name:   "CleanDomain",
			rawURL: "https://example.com",
			expected: Features{
				FeatureHasIP:         0,
				FeatureHasAtSymbol:   0,
				FeatureLongURL:       0,
				FeatureURLDepth:      0,
				FeatureHasRedirect:   0,
				FeatureHTTPSInDomain: 0,
				FeatureShortURL:      0,
				FeatureDashInDomain:  0,
			},
			description: "A plain HTTPS domain trips nothing",
		},
		{
			name:   "IPHost",
			rawURL: "http://192.168.10.5/login",
			expected: Features{
				FeatureHasIP:         1,
				FeatureHasAtSymbol:   0,
				FeatureLongURL:       0,
				FeatureURLDepth:      1,
				FeatureHasRedirect:   0,
				FeatureHTTPSInDomain: 0,
				FeatureShortURL:      0,
				FeatureDashInDomain:  0,
			},
			description: "Bare IP hosts are flagged",
		},
		{
			name:   "AtSymbol",
			rawURL: "http://example.com/@admin",
			expected: Features{
				FeatureHasIP:         0,
				FeatureHasAtSymbol:   1,
				FeatureLongURL:       0,
				FeatureURLDepth:      1,
				FeatureHasRedirect:   0,
				FeatureHTTPSInDomain: 0,
				FeatureShortURL:      0,
				FeatureDashInDomain:  0,
			},
			description: "An @ anywhere in the URL is flagged",
		},
		{
			name:   "LongURLWithDepth",
			rawURL: "http://example.com/" + strings.Repeat("segment/", 6),
			expected: Features{
				FeatureHasIP:         0,
				FeatureHasAtSymbol:   0,
				FeatureLongURL:       1,
				FeatureURLDepth:      6,
				FeatureHasRedirect:   0,
				FeatureHTTPSInDomain: 0,
				FeatureShortURL:      0,
				FeatureDashInDomain:  0,
			},
			description: "Length threshold and path depth counting",
		},
		{
			name:   "EmbeddedRedirect",
			rawURL: "http://example.com/redirect?to=http://evil.example//landing",
			expected: Features{
				FeatureHasIP:         0,
				FeatureHasAtSymbol:   0,
				FeatureLongURL:       1,
				FeatureURLDepth:      1,
				FeatureHasRedirect:   1,
				FeatureHTTPSInDomain: 0,
				FeatureShortURL:      0,
				FeatureDashInDomain:  0,
			},
			description: "A second // past the scheme is flagged",
		},
		{
			name:   "HTTPSTokenInDomain",
			rawURL: "http://https-example.com",
			expected: Features{
				FeatureHasIP:         0,
				FeatureHasAtSymbol:   0,
				FeatureLongURL:       0,
				FeatureURLDepth:      0,
				FeatureHasRedirect:   0,
				FeatureHTTPSInDomain: 1,
				FeatureShortURL:      0,
				FeatureDashInDomain:  1,
			},
			description: "The https token inside the domain is flagged, as is the dash",
		},
		{
			name:   "Shortener",
			rawURL: "https://bit.ly/3xYzAbC",
			expected: Features{
				FeatureHasIP:         0,
				FeatureHasAtSymbol:   0,
				FeatureLongURL:       0,
				FeatureURLDepth:      1,
				FeatureHasRedirect:   0,
				FeatureHTTPSInDomain: 0,
				FeatureShortURL:      1,
				FeatureDashInDomain:  0,
			},
			description: "Known shortening services are flagged",
		},
		{
			name:   "ShortenerCaseInsensitive",
			rawURL: "https://TinyURL.com/abc",
			expected: Features{
				FeatureHasIP:         0,
				FeatureHasAtSymbol:   0,
				FeatureLongURL:       0,
				FeatureURLDepth:      1,
				FeatureHasRedirect:   0,
				FeatureHTTPSInDomain: 0,
				FeatureShortURL:      1,
				FeatureDashInDomain:  0,
			},
			description: "Shortener matching ignores case",
		},
	}

	e := New()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := url.Parse(tc.rawURL)
			require.NoError(t, err, "Test URL should parse")

			features := e.AddressBarFeatures(tc.rawURL, u)

			assert.Equal(t, tc.expected, features, tc.description)
		})
	}
}

func TestPathDepth(t *testing.T) {
	testCases := []struct {
		path     string
		expected int
	}{
		{"", 0},
		{"/", 0},
		{"/a", 1},
		{"/a/b/c", 3},
		{"/a//b/", 2},
	}

	for _, tc := range testCases {
		u := &url.URL{Path: tc.path}
		assert.Equal(t, tc.expected, pathDepth(u), "path %q", tc.path)
	}
}
