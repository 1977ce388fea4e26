package api

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/yousuf64/shift"

	"github.com/daireto/phishing-url-detector/internal/i18n"
)

//go:embed web/index.html
var webFS embed.FS

var indexTmpl = template.Must(template.ParseFS(webFS, "web/index.html"))

// indexData is the payload rendered into the demo page. The maps are
// emitted inside a script element, where html/template encodes them as
// JSON for the client-side controller.
type indexData struct {
	Lang         string
	App          map[string]string
	Badge        map[string]string
	Errors       map[string]string
	Descriptions map[string]string
}

// handleIndex renders the demo page in the request locale
func (a *API) handleIndex(w http.ResponseWriter, r *http.Request, route shift.Route) error {
	locale := a.bundle.Default()
	if t := i18n.FromContext(r.Context()); t != nil {
		locale = t.Locale()
	}

	data := indexData{
		Lang:         locale,
		App:          a.bundle.Section(locale, "app"),
		Badge:        a.bundle.Section(locale, "badge"),
		Errors:       a.bundle.Section(locale, "errors"),
		Descriptions: a.bundle.Section(locale, "features"),
	}

	// Render to a buffer so a template failure never leaves a half-written page.
	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}
