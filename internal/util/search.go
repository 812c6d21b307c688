package util

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "with": true, "by": true, "from": true,
	"is": true, "are": true, "was": true, "were": true, "be": true,
}

// SearchKeywords lowercases a search term and keeps the words worth matching on.
func SearchKeywords(term string) []string {
	var keywords []string
	seen := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(term)) {
		word = strings.Trim(word, `.,;:!?"'()`)
		if stopWords[word] || utf8.RuneCountInString(word) < 3 || seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
	}
	return keywords
}

// MatchesAnyKeyword reports whether text contains one of the keywords.
func MatchesAnyKeyword(text string, keywords []string) bool {
	text = strings.ToLower(text)
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// trackingParams are dropped by NormalizeURL. Keys starting with "utm_" are
// dropped as well.
var trackingParams = map[string]bool{
	"fbclid": true, "gclid": true, "mc_cid": true, "mc_eid": true,
	"oc": true, "ocid": true, "cmpid": true, "ref": true, "ref_src": true,
	"smid": true, "at_medium": true, "at_campaign": true,
}

// NormalizeURL builds the de-duplication key for an article URL: scheme and
// host lowercased, fragment and tracking parameters removed, remaining query
// parameters sorted, trailing slash trimmed. The path keeps its case.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.RawFragment = ""
	u.User = nil

	q := u.Query()
	for key := range q {
		lower := strings.ToLower(key)
		if trackingParams[lower] || strings.HasPrefix(lower, "utm_") {
			q.Del(key)
		}
	}
	u.RawQuery = q.Encode()
	u.ForceQuery = false

	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawPath = ""
	return u.String()
}
