package extractor

import (
	"context"
	"crypto/tls"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// maxSafeRedirects is the number of redirects a legitimate page may follow.
const maxSafeRedirects = 2

var (
	mouseOverScript   = regexp.MustCompile(`(?i)addEventListener\s*\(\s*['"]mouseover['"]`)
	contextMenuScript = regexp.MustCompile(`(?i)addEventListener\s*\(\s*['"]contextmenu['"]`)
)

// pageSignals holds what the DOM traversal found in the fetched page.
type pageSignals struct {
	invisibleIframe    bool
	mouseOver          bool
	disabledRightClick bool
}

// ContentFeatures extracts the features backed by fetching the page. When
// the page cannot be fetched at all, the pessimistic defaults apply: every
// content trick is assumed present.
func (e *Extractor) ContentFeatures(ctx context.Context, rawURL string) Features {
	body, status, redirects, err := e.fetchPage(ctx, rawURL)
	if err != nil {
		e.log.Debug("Page fetch failed",
			slog.String("url", rawURL),
			slog.Any("error", err))
		return Features{
			FeatureResponseStatus:     0,
			FeatureInvisibleIframe:    1,
			FeatureHasMouseOver:       1,
			FeatureDisabledRightClick: 1,
			FeatureManyRedirects:      0,
		}
	}

	signals := analyzeContent(body)

	return Features{
		FeatureResponseStatus:     float64(status),
		FeatureInvisibleIframe:    boolFeature(signals.invisibleIframe),
		FeatureHasMouseOver:       boolFeature(signals.mouseOver),
		FeatureDisabledRightClick: boolFeature(signals.disabledRightClick),
		FeatureManyRedirects:      boolFeature(redirects > maxSafeRedirects),
	}
}

// fetchPage fetches the page, counting redirects along the way. Certificate
// errors must not hide a phishing page, so verification is disabled.
func (e *Extractor) fetchPage(ctx context.Context, rawURL string) (body string, status, redirects int, err error) {
	client := *e.client

	transport, ok := client.Transport.(*http.Transport)
	if ok {
		transport = transport.Clone()
	} else {
		transport = http.DefaultTransport.(*http.Transport).Clone()
	}
	if transport.TLSClientConfig == nil {
		transport.TLSClientConfig = &tls.Config{}
	}
	transport.TLSClientConfig.InsecureSkipVerify = true
	client.Transport = transport

	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		redirects = len(via)
		if len(via) >= 10 {
			return http.ErrUseLastResponse
		}
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", 0, 0, err
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		if e.metrics != nil {
			e.metrics.RecordHTTPClientRequest(0, time.Since(start).Seconds(), http.MethodGet, "page_fetch")
		}
		return "", 0, 0, err
	}
	defer resp.Body.Close()

	if e.metrics != nil {
		e.metrics.RecordHTTPClientRequest(resp.StatusCode, time.Since(start).Seconds(), http.MethodGet, "page_fetch")
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", 0, 0, err
	}

	return string(data), resp.StatusCode, redirects, nil
}

// analyzeContent walks the page DOM looking for the content tricks.
// An empty page counts as hiding all of them.
func analyzeContent(body string) pageSignals {
	signals := pageSignals{}

	if strings.TrimSpace(body) == "" {
		return pageSignals{invisibleIframe: true, mouseOver: true, disabledRightClick: true}
	}

	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return pageSignals{invisibleIframe: true, mouseOver: true, disabledRightClick: true}
	}

	traverse(doc, &signals)
	return signals
}

// traverse performs depth-first traversal of HTML nodes.
func traverse(n *html.Node, signals *pageSignals) {
	if n.Type == html.ElementNode {
		processElement(n, signals)
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		traverse(c, signals)
	}
}

func processElement(n *html.Node, signals *pageSignals) {
	switch n.Data {
	case "iframe":
		// A frameborder attribute marks the iframe as styled to be
		// invisible, the classic overlay trick.
		if getAttribute(n, "frameborder") != "" {
			signals.invisibleIframe = true
		}
	case "script":
		if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
			script := n.FirstChild.Data
			if mouseOverScript.MatchString(script) {
				signals.mouseOver = true
			}
			if contextMenuScript.MatchString(script) {
				signals.disabledRightClick = true
			}
		}
	}

	for _, attr := range n.Attr {
		switch strings.ToLower(attr.Key) {
		case "onmouseover":
			signals.mouseOver = true
		case "oncontextmenu":
			signals.disabledRightClick = true
		}
	}
}

// getAttribute extracts an attribute value from an HTML node.
func getAttribute(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, key) {
			return attr.Val
		}
	}
	return ""
}

// NewPageClient builds the HTTP client used for content fetches.
func NewPageClient(timeout time.Duration, transport http.RoundTripper) *http.Client {
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
