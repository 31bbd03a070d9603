package validation

import (
	"net/url"
	"strings"
)

var supportedDomains = []string{
	"youtube.com",
	"youtu.be",
	"m.youtube.com",
	"music.youtube.com",
}

// IsSupportedLink reports whether text is an http(s) URL pointing at a
// supported source domain. The check is purely syntactic; no network access.
func IsSupportedLink(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	parsedURL, err := url.ParseRequestURI(trimmed)
	if err != nil {
		return false
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return false
	}

	hostname := strings.ToLower(parsedURL.Hostname())
	for _, domain := range supportedDomains {
		if hostname == domain || strings.HasSuffix(hostname, "."+domain) {
			return true
		}
	}

	return false
}
