// Package extractor derives the phishing-detection feature vector from a URL.
//
// Features fall in three groups: address-bar features computed from the URL
// string alone, domain features backed by a WHOIS lookup, and content
// features backed by fetching the page. The two networked groups degrade to
// pessimistic defaults when the lookup or fetch fails, so extraction always
// yields a complete vector.
package extractor

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Feature keys, in extraction order.
const (
	FeatureHasIP         = "has_ip"
	FeatureHasAtSymbol   = "has_at_symbol"
	FeatureLongURL       = "long_url"
	FeatureURLDepth      = "url_depth"
	FeatureHasRedirect   = "has_redirection"
	FeatureHTTPSInDomain = "https_in_domain"
	FeatureShortURL      = "short_url"
	FeatureDashInDomain  = "dash_in_domain"

	FeatureNoDNSRecord     = "no_dns_record"
	FeatureDomainAgeMonths = "domain_age_in_months"
	FeatureDomainEndMonths = "domain_end_in_months"

	FeatureResponseStatus     = "response_status"
	FeatureInvisibleIframe    = "invisible_iframe"
	FeatureHasMouseOver       = "has_mouse_over"
	FeatureDisabledRightClick = "disabled_right_click"
	FeatureManyRedirects      = "many_redirects"
)

// FeatureNames lists every feature key in extraction order.
func FeatureNames() []string {
	return []string{
		FeatureHasIP,
		FeatureHasAtSymbol,
		FeatureLongURL,
		FeatureURLDepth,
		FeatureHasRedirect,
		FeatureHTTPSInDomain,
		FeatureShortURL,
		FeatureDashInDomain,
		FeatureNoDNSRecord,
		FeatureDomainAgeMonths,
		FeatureDomainEndMonths,
		FeatureResponseStatus,
		FeatureInvisibleIframe,
		FeatureHasMouseOver,
		FeatureDisabledRightClick,
		FeatureManyRedirects,
	}
}

// Features maps a feature key to its extracted value.
type Features map[string]float64

// DomainRecord carries the WHOIS timestamps the domain features need.
type DomainRecord struct {
	CreatedAt time.Time
	ExpiresAt time.Time
}

// WhoisClient looks up registration data for a domain.
type WhoisClient interface {
	Lookup(ctx context.Context, domain string) (*DomainRecord, error)
}

// MetricsCollector records WHOIS lookup and page fetch metrics.
type MetricsCollector interface {
	RecordWhoisLookup(success bool, duration float64)
	RecordHTTPClientRequest(statusCode int, duration float64, method, requestType string)
}

// Extractor extracts the feature vector for a URL.
type Extractor struct {
	whois   WhoisClient
	client  *http.Client
	metrics MetricsCollector
	log     *slog.Logger
}

// Option configures the Extractor
type Option func(*Extractor)

// WithWhoisClient sets the WHOIS client
func WithWhoisClient(wc WhoisClient) Option {
	return func(e *Extractor) { e.whois = wc }
}

// WithHTTPClient sets the HTTP client used to fetch page content
func WithHTTPClient(client *http.Client) Option {
	return func(e *Extractor) { e.client = client }
}

// WithMetrics sets the metrics collector
func WithMetrics(m MetricsCollector) Option {
	return func(e *Extractor) { e.metrics = m }
}

// WithLogger sets the logger
func WithLogger(log *slog.Logger) Option {
	return func(e *Extractor) { e.log = log }
}

// New creates an Extractor with optional configurations.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		whois:  noopWhois{},
		client: &http.Client{Timeout: 5 * time.Second},
		log:    slog.Default(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Extract computes the complete feature vector for rawURL. The URL must
// already be normalized (scheme present, parseable).
func (e *Extractor) Extract(ctx context.Context, rawURL string) (Features, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	features := make(Features, len(FeatureNames()))
	merge(features, e.AddressBarFeatures(rawURL, u))
	merge(features, e.DomainFeatures(ctx, u))
	merge(features, e.ContentFeatures(ctx, rawURL))
	return features, nil
}

func merge(dst, src Features) {
	for k, v := range src {
		dst[k] = v
	}
}

// noopWhois is the default WHOIS client; it reports every domain as
// unresolvable, which yields the pessimistic domain defaults.
type noopWhois struct{}

func (noopWhois) Lookup(ctx context.Context, domain string) (*DomainRecord, error) {
	return nil, context.Canceled
}
