package extractor

import (
	"net"
	"net/url"
	"regexp"
	"strings"
)

// maxSafeURLLength is the length from which a URL is considered long.
const maxSafeURLLength = 54

// shorteningServices matches the hostnames of known URL-shortening services.
var shorteningServices = regexp.MustCompile(`(?i)bit\.ly|goo\.gl|shorte\.st|go2l\.ink|x\.co|ow\.ly|t\.co|tinyurl|tr\.im|` +
	`is\.gd|cli\.gs|yfrog\.com|migre\.me|ff\.im|tiny\.cc|url4\.eu|twit\.ac|` +
	`su\.pr|twurl\.nl|snipurl\.com|short\.to|BudURL\.com|ping\.fm|post\.ly|` +
	`Just\.as|bkite\.com|snipr\.com|fic\.kr|loopt\.us|doiop\.com|short\.ie|` +
	`kl\.am|wp\.me|rubyurl\.com|om\.ly|to\.ly|bit\.do|lnkd\.in|db\.tt|qr\.ae|` +
	`adf\.ly|bitly\.com|cur\.lv|tinyurl\.com|ity\.im|q\.gs|po\.st|bc\.vc|` +
	`twitthis\.com|u\.to|j\.mp|buzurl\.com|cutt\.us|u\.bb|yourls\.org|` +
	`prettylinkpro\.com|scrnch\.me|filoops\.info|vzturl\.com|qr\.net|` +
	`1url\.com|tweez\.me|v\.gd|link\.zip\.net|rebrandly\.com|t2m\.io|bl\.ink|` +
	`shrtco\.de|cutt\.ly|shorte\.link|rb\.gy|soo\.gd|v\.ht|l9\.nu|gg\.gg|` +
	`tny\.im|clck\.ru`)

// AddressBarFeatures extracts the features computed from the URL string alone.
func (e *Extractor) AddressBarFeatures(rawURL string, u *url.URL) Features {
	return Features{
		FeatureHasIP:         boolFeature(hasIP(u)),
		FeatureHasAtSymbol:   boolFeature(strings.Contains(rawURL, "@")),
		FeatureLongURL:       boolFeature(len(rawURL) >= maxSafeURLLength),
		FeatureURLDepth:      float64(pathDepth(u)),
		FeatureHasRedirect:   boolFeature(hasRedirection(rawURL)),
		FeatureHTTPSInDomain: boolFeature(strings.Contains(strings.ToLower(u.Host), "https")),
		FeatureShortURL:      boolFeature(shorteningServices.MatchString(rawURL)),
		FeatureDashInDomain:  boolFeature(strings.Contains(u.Host, "-")),
	}
}

// hasIP reports whether the host is an IP address rather than a domain name.
// Phishing pages frequently sit behind bare IP addresses.
func hasIP(u *url.URL) bool {
	return net.ParseIP(u.Hostname()) != nil
}

// pathDepth counts the non-empty path segments of the URL.
func pathDepth(u *url.URL) int {
	depth := 0
	for _, segment := range strings.Split(u.Path, "/") {
		if segment != "" {
			depth++
		}
	}
	return depth
}

// hasRedirection reports whether "//" appears past the scheme separator.
// A late "//" usually means the path smuggles a second URL.
func hasRedirection(rawURL string) bool {
	return strings.LastIndex(rawURL, "//") > 6
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
