package sesscookie

import (
	"net"
	"net/http"
	"strings"
)

// PathMatch reports whether a cookie scoped to cookiePath applies to a
// request for requestPath.
//
// A request path whose leading slash is dropped is also tried, so "/foo"
// matches a cookie path of "foo". Config accepts such paths with a warning.
func PathMatch(cookiePath, requestPath string) bool {
	if requestPath == cookiePath {
		return true
	}
	if strings.HasPrefix(requestPath, cookiePath) {
		return true
	}
	return strings.HasPrefix(requestPath, "/") && strings.HasPrefix(requestPath[1:], cookiePath)
}

// DomainMatch reports whether host is domain or one of its subdomains.
// An empty domain matches nothing; use Policy.MatchesHost for origin-only
// cookies.
func DomainMatch(domain, host string) bool {
	domain = strings.ToLower(strings.TrimPrefix(domain, "."))
	if domain == "" {
		return false
	}
	host = strings.ToLower(stripPort(host))
	if host == domain {
		return true
	}
	return strings.HasSuffix(host, "."+domain)
}

// MatchesPath applies PathMatch with the policy path.
func (p Policy) MatchesPath(requestPath string) bool {
	return PathMatch(p.Path, requestPath)
}

// MatchesHost reports whether a cookie issued by origin under p is sent to
// host. Without a Domain only origin itself qualifies.
func (p Policy) MatchesHost(origin, host string) bool {
	if p.Domain == "" {
		return strings.EqualFold(stripPort(origin), stripPort(host))
	}
	return DomainMatch(p.Domain, host)
}

// Applies reports whether a cookie issued by origin under p accompanies r.
func (p Policy) Applies(origin string, r *http.Request) bool {
	if r == nil || r.URL == nil {
		return false
	}
	return p.MatchesHost(origin, r.Host) && p.MatchesPath(r.URL.Path)
}

func stripPort(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}
