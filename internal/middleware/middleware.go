// Package middleware holds the HTTP middleware shared by the services.
package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/yousuf64/shift"

	"github.com/daireto/phishing-url-detector/internal/i18n"
)

// CORSMiddleware handles CORS requests with default settings
func CORSMiddleware(next shift.HandlerFunc) shift.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, route shift.Route) error {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")
		return next(w, r, route)
	}
}

// OptionsHandler handles OPTIONS requests for CORS preflight
// This can be used as a route handler for "/*wildcard" OPTIONS routes
func OptionsHandler(w http.ResponseWriter, r *http.Request, route shift.Route) error {
	w.WriteHeader(http.StatusOK)
	return nil
}

// LanguageMiddleware resolves the request locale and stores a translator in
// the request context. The lang query parameter wins over Accept-Language.
func LanguageMiddleware(bundle *i18n.Bundle) func(shift.HandlerFunc) shift.HandlerFunc {
	return func(next shift.HandlerFunc) shift.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request, route shift.Route) error {
			locale := resolveLocale(bundle, r)
			ctx := i18n.NewContext(r.Context(), bundle.Translator(locale))
			return next(w, r.WithContext(ctx), route)
		}
	}
}

func resolveLocale(bundle *i18n.Bundle, r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); lang != "" && bundle.Has(lang) {
		return lang
	}

	for _, lang := range parseAcceptLanguage(r.Header.Get("Accept-Language")) {
		if bundle.Has(lang) {
			return lang
		}
	}

	return bundle.Default()
}

// parseAcceptLanguage extracts the primary language subtags from an
// Accept-Language header, in order of appearance. Quality values are
// ignored since browsers already list languages by preference.
func parseAcceptLanguage(header string) []string {
	if header == "" {
		return nil
	}

	langs := make([]string, 0, 4)
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if tag == "" || tag == "*" {
			continue
		}
		if idx := strings.IndexByte(tag, '-'); idx > 0 {
			tag = tag[:idx]
		}
		langs = append(langs, strings.ToLower(tag))
	}
	return langs
}

// errorItem is a single entry of a validation error payload
type errorItem struct {
	Msg string `json:"msg"`
}

// ErrorMiddleware converts handler errors into JSON payloads with
// structured logging. Validation errors render as {"errors": [...]},
// everything else as {"message": ...}.
func ErrorMiddleware(logger *slog.Logger) func(shift.HandlerFunc) shift.HandlerFunc {
	return func(next shift.HandlerFunc) shift.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request, route shift.Route) error {
			err := next(w, r, route)
			if err == nil {
				return nil
			}

			logger.Error("Request error",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Any("error", err))

			t := i18n.FromContext(r.Context())

			if ve, ok := AsValidationError(err); ok {
				writeJSONError(w, http.StatusBadRequest, map[string]any{
					"errors": []errorItem{{Msg: ve.Msg}},
				})
				return err
			}

			if he, ok := AsHTTPError(err); ok {
				writeJSONError(w, he.Status, map[string]any{
					"message": he.Message,
				})
				return err
			}

			writeJSONError(w, http.StatusInternalServerError, map[string]any{
				"message": t.T("errors.generic"),
			})
			return err
		}
	}
}

func writeJSONError(w http.ResponseWriter, status int, payload map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
