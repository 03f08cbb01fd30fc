// Package sesscookie describes how session cookies are issued: their
// lifetime, their scope and their transport-security attributes.
//
// A Policy is configured once and shared. Every call to Derive computes a
// fresh expiration, so cookie lifetime slides with each issuance.
//
// Cookies do not isolate by port or by scheme. Policies that share a Name
// but differ in Path or Domain cannot be told apart on the request side,
// because user agents only send the name and value back.
package sesscookie

import (
	"log/slog"
	"math"
	"net/http"
	"time"
)

// Policy holds the attributes of cookies issued for a session system.
// Treat it as immutable once published.
type Policy struct {
	// Timeout is the cookie lifetime in minutes. Zero leaves Expires unset
	// and the cookie lives until the user agent ends its session.
	Timeout int `json:"timeout"`

	// HTTPOnly hides the cookie from scripts in the user agent.
	HTTPOnly bool `json:"http_only"`

	// Secure restricts the cookie to secure channels.
	Secure bool `json:"secure"`

	// Name is the lookup key. Changing it invalidates every issued cookie.
	Name string `json:"name"`

	// Path restricts the cookie to a path prefix. Empty lets the user agent
	// pick a default from the request URI.
	Path string `json:"path"`

	// Domain widens the cookie to a host and its subdomains. Empty keeps the
	// cookie on the origin server only.
	Domain string `json:"domain"`
}

// Derive builds the cookie for value under policy p.
// An empty Name is not rejected here; user agents will drop such cookies.
func Derive(p Policy, value string) *http.Cookie {
	return derive(p, value, time.Now().UTC())
}

// Cookie is the method form of Derive.
func (p Policy) Cookie(value string) *http.Cookie {
	return Derive(p, value)
}

// Lifetime returns Timeout as a duration, saturated at the limits of
// time.Duration so that the sign of Timeout is always kept.
func (p Policy) Lifetime() time.Duration {
	const maxMinutes = math.MaxInt64 / int64(time.Minute)
	minutes := int64(p.Timeout)
	switch {
	case minutes > maxMinutes:
		return math.MaxInt64
	case minutes < -maxMinutes:
		return math.MinInt64
	}
	return time.Duration(minutes) * time.Minute
}

// Expired returns a cookie that makes the user agent drop a cookie issued
// under p.
func (p Policy) Expired() *http.Cookie {
	return &http.Cookie{
		Name:     p.Name,
		Value:    "",
		Path:     p.Path,
		Domain:   p.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   p.Secure,
		HttpOnly: p.HTTPOnly,
	}
}

// LogValue implements slog.LogValuer.
func (p Policy) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", p.Name),
		slog.String("path", p.Path),
		slog.String("domain", p.Domain),
		slog.Int("timeout", p.Timeout),
		slog.Bool("secure", p.Secure),
		slog.Bool("http_only", p.HTTPOnly),
	)
}

func derive(p Policy, value string, now time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     p.Name,
		Value:    value,
		Secure:   p.Secure,
		HttpOnly: p.HTTPOnly,
	}
	if p.Timeout != 0 {
		cookie.Expires = now.UTC().Add(p.Lifetime())
	}
	if p.Domain != "" {
		cookie.Domain = p.Domain
	}
	if p.Path != "" {
		cookie.Path = p.Path
	}
	return cookie
}
