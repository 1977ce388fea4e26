package extractor

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubWhois returns a canned record or error for every lookup.
type stubWhois struct {
	record *DomainRecord
	err    error
}

func (s stubWhois) Lookup(ctx context.Context, domain string) (*DomainRecord, error) {
	return s.record, s.err
}

func TestDomainFeatures_TableDriven(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name        string
		whois       WhoisClient
		check       func(*testing.T, Features)
		description string
	}{
		{
			name:  "LookupFailure",
			whois: stubWhois{err: errors.New("no such host")},
			check: func(t *testing.T, f Features) {
				assert.Equal(t, 1.0, f[FeatureNoDNSRecord], "Failed lookups mark the domain unregistered")
				assert.Equal(t, 0.0, f[FeatureDomainAgeMonths])
				assert.Equal(t, 0.0, f[FeatureDomainEndMonths])
			},
			description: "Degrade to pessimistic defaults when WHOIS fails",
		},
		{
			name:  "MissingDates",
			whois: stubWhois{record: &DomainRecord{}},
			check: func(t *testing.T, f Features) {
				assert.Equal(t, 0.0, f[FeatureNoDNSRecord], "The record resolved, so DNS exists")
				assert.Equal(t, 0.0, f[FeatureDomainAgeMonths], "Unknown dates contribute nothing")
				assert.Equal(t, 0.0, f[FeatureDomainEndMonths])
			},
			description: "Records without dates yield zero month spans",
		},
		{
			name: "EstablishedDomain",
			whois: stubWhois{record: &DomainRecord{
				CreatedAt: now.AddDate(-2, 0, 0),
				ExpiresAt: now.AddDate(1, 0, 0),
			}},
			check: func(t *testing.T, f Features) {
				assert.Equal(t, 0.0, f[FeatureNoDNSRecord])
				assert.InDelta(t, 36, f[FeatureDomainAgeMonths], 2, "Three years between creation and expiry")
				assert.InDelta(t, 12, f[FeatureDomainEndMonths], 2, "One year until expiry")
			},
			description: "Compute month spans from the record dates",
		},
		{
			name:  "DefaultClient",
			whois: nil,
			check: func(t *testing.T, f Features) {
				assert.Equal(t, 1.0, f[FeatureNoDNSRecord], "The noop client resolves nothing")
			},
			description: "Without a WHOIS client every domain looks unregistered",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var opts []Option
			if tc.whois != nil {
				opts = append(opts, WithWhoisClient(tc.whois))
			}
			e := New(opts...)

			u, err := url.Parse("https://example.com")
			require.NoError(t, err)

			features := e.DomainFeatures(context.Background(), u)
			tc.check(t, features)
		})
	}
}

func TestMonthsBetween(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		from     time.Time
		to       time.Time
		expected int
	}{
		{"OneMonth", base, base.AddDate(0, 0, 30), 1},
		{"RoundsUp", base, base.AddDate(0, 0, 31), 2},
		{"OneYear", base, base.AddDate(1, 0, 0), 13},
		{"SameInstant", base, base, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, monthsBetween(tc.from, tc.to))
		})
	}
}
