package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// SetCookies returns the Set-Cookie header lines of a recorded response.
func SetCookies(rec *httptest.ResponseRecorder) []string {
	return rec.Result().Header.Values("Set-Cookie")
}

// MustCookie returns the cookie named name set on the recorded response.
func MustCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("expected cookie %q, got %v", name, SetCookies(rec))
	return nil
}

// MustNoCookie fails when the recorded response sets any cookie.
func MustNoCookie(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	if lines := SetCookies(rec); len(lines) > 0 {
		t.Fatalf("expected no cookies, got %v", lines)
	}
}
