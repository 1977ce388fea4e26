package api

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/daireto/phishing-url-detector/internal/i18n"
	"github.com/daireto/phishing-url-detector/internal/middleware"
)

// maxURLLength is the longest URL accepted for analysis.
const maxURLLength = 2048

// validateURL validates and normalizes the submitted URL. A URL without a
// scheme gets http:// prepended before parsing. The hostname must carry at
// least one dot, which rules out bare hosts like localhost.
func validateURL(t *i18n.Translator, rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)

	if rawURL == "" {
		return "", middleware.NewValidationError("%s", t.T("errors.url_required"))
	}

	if len(rawURL) > maxURLLength {
		return "", middleware.NewValidationError("%s",
			t.T("errors.url_too_long", "max", strconv.Itoa(maxURLLength)))
	}

	if !strings.Contains(rawURL, "://") {
		rawURL = "http://" + rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", middleware.NewValidationError("%s", t.T("errors.url_invalid"))
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", middleware.NewValidationError("%s", t.T("errors.scheme_unsupported"))
	}

	hostname := u.Hostname()
	if hostname == "" || !strings.Contains(hostname, ".") {
		return "", middleware.NewValidationError("%s", t.T("errors.url_invalid"))
	}

	if strings.HasPrefix(hostname, ".") || strings.HasSuffix(hostname, ".") ||
		strings.Contains(hostname, "..") {
		return "", middleware.NewValidationError("%s", t.T("errors.url_invalid"))
	}

	return u.String(), nil
}
