package extractor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentFeatures_TableDriven(t *testing.T) {
	testCases := []struct {
		name        string
		html        string
		expected    Features
		description string
	}{
		{
			name: "CleanPage",
			html: `<html><body><h1>Welcome</h1><p>Nothing suspicious here.</p></body></html>`,
			expected: Features{
				FeatureResponseStatus:     200,
				FeatureInvisibleIframe:    0,
				FeatureHasMouseOver:       0,
				FeatureDisabledRightClick: 0,
				FeatureManyRedirects:      0,
			},
			description: "A plain page trips no content features",
		},
		{
			name: "InvisibleIframe",
			html: `<html><body><iframe src="https://example.com" frameborder="0"></iframe></body></html>`,
			expected: Features{
				FeatureResponseStatus:     200,
				FeatureInvisibleIframe:    1,
				FeatureHasMouseOver:       0,
				FeatureDisabledRightClick: 0,
				FeatureManyRedirects:      0,
			},
			description: "An iframe with a frameborder attribute is flagged",
		},
		{
			name: "MouseOverAttribute",
			html: `<html><body><a href="#" onmouseover="window.status='safe'">link</a></body></html>`,
			expected: Features{
				FeatureResponseStatus:     200,
				FeatureInvisibleIframe:    0,
				FeatureHasMouseOver:       1,
				FeatureDisabledRightClick: 0,
				FeatureManyRedirects:      0,
			},
			description: "An onmouseover attribute is flagged",
		},
		{
			name: "MouseOverScript",
			html: `<html><body><script>document.addEventListener("mouseover", handler);</script></body></html>`,
			expected: Features{
				FeatureResponseStatus:     200,
				FeatureInvisibleIframe:    0,
				FeatureHasMouseOver:       1,
				FeatureDisabledRightClick: 0,
				FeatureManyRedirects:      0,
			},
			description: "A mouseover listener registered in script text is flagged",
		},
		{
			name: "DisabledRightClick",
			html: `<html><body oncontextmenu="return false"><p>content</p></body></html>`,
			expected: Features{
				FeatureResponseStatus:     200,
				FeatureInvisibleIframe:    0,
				FeatureHasMouseOver:       0,
				FeatureDisabledRightClick: 1,
				FeatureManyRedirects:      0,
			},
			description: "An oncontextmenu attribute is flagged",
		},
		{
			name: "ContextMenuScript",
			html: `<html><body><script>window.addEventListener('contextmenu', function(e) { e.preventDefault(); });</script></body></html>`,
			expected: Features{
				FeatureResponseStatus:     200,
				FeatureInvisibleIframe:    0,
				FeatureHasMouseOver:       0,
				FeatureDisabledRightClick: 1,
				FeatureManyRedirects:      0,
			},
			description: "A contextmenu listener registered in script text is flagged",
		},
		{
			name: "EmptyBody",
			html: "",
			expected: Features{
				FeatureResponseStatus:     200,
				FeatureInvisibleIframe:    1,
				FeatureHasMouseOver:       1,
				FeatureDisabledRightClick: 1,
				FeatureManyRedirects:      0,
			},
			description: "An empty page counts as hiding every trick",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tc.html)
			}))
			defer srv.Close()

			e := New()
			features := e.ContentFeatures(context.Background(), srv.URL)

			assert.Equal(t, tc.expected, features, tc.description)
		})
	}
}

func TestContentFeatures_UnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	e := New()
	features := e.ContentFeatures(context.Background(), srv.URL)

	expected := Features{
		FeatureResponseStatus:     0,
		FeatureInvisibleIframe:    1,
		FeatureHasMouseOver:       1,
		FeatureDisabledRightClick: 1,
		FeatureManyRedirects:      0,
	}
	assert.Equal(t, expected, features, "Unreachable pages degrade to pessimistic defaults")
}

func TestContentFeatures_RedirectChain(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/", "/hop1", "/hop2":
			next := map[string]string{"/": "/hop1", "/hop1": "/hop2", "/hop2": "/hop3"}[r.URL.Path]
			http.Redirect(w, r, srv.URL+next, http.StatusFound)
		default:
			fmt.Fprint(w, `<html><body><p>landing</p></body></html>`)
		}
	}))
	defer srv.Close()

	e := New()
	features := e.ContentFeatures(context.Background(), srv.URL)

	assert.Equal(t, 1.0, features[FeatureManyRedirects], "Three redirects exceed the safe limit")
	assert.Equal(t, 200.0, features[FeatureResponseStatus])
}

func TestContentFeatures_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	e := New()
	features := e.ContentFeatures(context.Background(), srv.URL)

	assert.Equal(t, 500.0, features[FeatureResponseStatus], "Non-2xx responses still yield their status")
	assert.Equal(t, 0.0, features[FeatureManyRedirects])
}
