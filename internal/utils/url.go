package utils

import "net/url"

// SanitizeURLForLog strips auth material from a URL before logging.
// The admin API accepts the key as a query parameter, which must never
// reach the log stream.
func SanitizeURLForLog(u *url.URL) string {
	if u == nil {
		return ""
	}
	query := u.Query()
	if query.Has("key") {
		query.Set("key", "***")
		clone := *u
		clone.RawQuery = query.Encode()
		return clone.RequestURI()
	}
	return u.RequestURI()
}
