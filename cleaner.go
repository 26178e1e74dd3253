package urlcleaner

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidURL is returned when the input string cannot be parsed as
// an absolute URL, or when its query contains malformed
// percent-encoding. Use [errors.Is] to test for it.
var ErrInvalidURL = errors.New("urlcleaner: invalid url")

// Clean parses rawURL, removes every query parameter whose name appears
// in blocklist, and returns the reassembled URL string.
//
// Blocklist matching is exact and case-sensitive against the
// percent-decoded parameter name. Duplicate occurrences of a name are
// each removed. Surviving parameters keep their original order and
// their original textual encoding, including bare parameters (?flag)
// and empty values (?name=). When no parameters survive, the result
// carries no query component and no trailing "?".
//
// A URL with no query component is returned unchanged. An empty
// blocklist is valid and leaves the query intact.
func Clean(rawURL string, blocklist []string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme == "" {
		return "", fmt.Errorf("%w: missing scheme in %q", ErrInvalidURL, rawURL)
	}
	if u.RawQuery == "" {
		return rawURL, nil
	}

	blocked := sliceToSet(blocklist)

	segments := strings.Split(u.RawQuery, "&")
	kept := segments[:0]
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		rawName, rawValue, hasValue := strings.Cut(seg, "=")
		name, err := url.QueryUnescape(rawName)
		if err != nil {
			return "", fmt.Errorf("%w: query name %q: %v", ErrInvalidURL, rawName, err)
		}
		if hasValue {
			if _, err := url.QueryUnescape(rawValue); err != nil {
				return "", fmt.Errorf("%w: query value %q: %v", ErrInvalidURL, rawValue, err)
			}
		}
		if blocked[name] {
			continue
		}
		kept = append(kept, seg)
	}

	u.RawQuery = strings.Join(kept, "&")
	if u.RawQuery == "" {
		u.ForceQuery = false
	}
	return u.String(), nil
}

// Untrack removes all tracking query parameters from rawURL, keeping
// the categories allowed by policy. A nil policy is the zero-value
// [TrackingPolicy], which strips everything.
func Untrack(rawURL string, policy *TrackingPolicy) (string, error) {
	return Clean(rawURL, policy.Resolve())
}

func sliceToSet(s []string) map[string]bool {
	m := make(map[string]bool, len(s))
	for _, v := range s {
		m[v] = true
	}
	return m
}
