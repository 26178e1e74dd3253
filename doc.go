// Package urlcleaner provides a small, policy-driven cleaner for URL
// query parameters.
//
// # Overview
//
// urlcleaner parses a URL string with the standard net/url package,
// removes every query parameter whose name appears on a blocklist, and
// serializes the result back to a URL string. Surviving parameters keep
// their original relative order and their original textual encoding;
// scheme, authority, path, and fragment are never touched.
//
// Two entry points are provided:
//   - [Untrack] — removes known marketing/tracking parameters (utm_*,
//     gclid, fbclid, …) according to a [TrackingPolicy]
//   - [Clean] — removes an explicit, caller-supplied list of parameter
//     names
//
// # Policies
//
// A [TrackingPolicy] controls which tracking-parameter categories are
// allowed to remain in a URL, one boolean flag per category. The zero
// value is the strictest policy: no category is allowed, every known
// tracking parameter is removed. [TrackingPolicy.Resolve] expands the
// flags into the concrete blocklist from static category tables; adding
// a category is a table change, not a logic change.
//
// # Errors
//
// The only failure mode is an input that does not parse as an absolute
// URL (missing scheme, malformed authority, malformed percent-encoding
// in the query). Such inputs fail with an error matching
// [ErrInvalidURL]; malformed input is never a panic. A URL with no
// query component is not an error and is returned unchanged.
//
// # Thread Safety
//
// Clean and Untrack are pure functions with no shared state and are
// safe for concurrent use. TrackingPolicy values should not be mutated
// after first use.
//
// # Example
//
//	clean, err := urlcleaner.Untrack("https://www.example.com/?utm_content=buffercf3b2&name=ferret", nil)
//	// clean == "https://www.example.com/?name=ferret"
package urlcleaner
