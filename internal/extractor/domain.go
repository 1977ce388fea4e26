package extractor

import (
	"context"
	"log/slog"
	"math"
	"net/url"
	"time"

	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
)

// averageMonthLength is the average length of a month in days.
const averageMonthLength = 30.417

// DomainFeatures extracts the WHOIS-backed features for the URL's domain.
// When the record cannot be resolved the domain is treated as unregistered.
func (e *Extractor) DomainFeatures(ctx context.Context, u *url.URL) Features {
	start := time.Now()
	record, err := e.whois.Lookup(ctx, u.Hostname())
	if e.metrics != nil {
		e.metrics.RecordWhoisLookup(err == nil, time.Since(start).Seconds())
	}
	if err != nil {
		e.log.Debug("WHOIS lookup failed",
			slog.String("domain", u.Hostname()),
			slog.Any("error", err))
		return Features{
			FeatureNoDNSRecord:     1,
			FeatureDomainAgeMonths: 0,
			FeatureDomainEndMonths: 0,
		}
	}

	if record.CreatedAt.IsZero() || record.ExpiresAt.IsZero() {
		return Features{
			FeatureNoDNSRecord:     0,
			FeatureDomainAgeMonths: 0,
			FeatureDomainEndMonths: 0,
		}
	}

	return Features{
		FeatureNoDNSRecord:     0,
		FeatureDomainAgeMonths: float64(monthsBetween(record.CreatedAt, record.ExpiresAt)),
		FeatureDomainEndMonths: float64(monthsBetween(time.Now(), record.ExpiresAt)),
	}
}

// monthsBetween returns the span from a to b in months, rounded up.
func monthsBetween(a, b time.Time) int {
	days := b.Sub(a).Hours() / 24
	return int(math.Ceil(days / averageMonthLength))
}

// LikexianWhoisClient resolves domain records through the WHOIS protocol.
type LikexianWhoisClient struct {
	client *whois.Client
}

// NewWhoisClient creates a WHOIS client with the given query timeout.
func NewWhoisClient(timeout time.Duration) *LikexianWhoisClient {
	c := whois.NewClient()
	c.SetTimeout(timeout)
	return &LikexianWhoisClient{client: c}
}

// Lookup queries and parses the WHOIS record for a domain. The query runs
// in a goroutine so the context deadline is honored even when the WHOIS
// server is unresponsive.
func (c *LikexianWhoisClient) Lookup(ctx context.Context, domain string) (*DomainRecord, error) {
	type result struct {
		record *DomainRecord
		err    error
	}

	ch := make(chan result, 1)
	go func() {
		raw, err := c.client.Whois(domain)
		if err != nil {
			ch <- result{nil, err}
			return
		}

		parsed, err := whoisparser.Parse(raw)
		if err != nil {
			ch <- result{nil, err}
			return
		}

		record := &DomainRecord{}
		if parsed.Domain != nil {
			if parsed.Domain.CreatedDateInTime != nil {
				record.CreatedAt = *parsed.Domain.CreatedDateInTime
			}
			if parsed.Domain.ExpirationDateInTime != nil {
				record.ExpiresAt = *parsed.Domain.ExpirationDateInTime
			}
		}
		ch <- result{record, nil}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		return r.record, r.err
	}
}
