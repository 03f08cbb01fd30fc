package config

import (
	"fmt"
	"strings"

	"github.com/devmarvs/sesscookie/apperr"
)

// MaxTimeout is the largest accepted cookie.timeout in minutes (400 days).
// User agents cap cookie lifetimes at that point anyway.
const MaxTimeout = 400 * 24 * 60

// Validate validates config values. Derivation itself never rejects a
// policy, so this is where misconfiguration is caught.
func Validate(cfg Config) error {
	var issues []string

	cookie := cfg.Cookie
	switch {
	case cookie.Name == "":
		issues = append(issues, "cookie.name is required")
	case !validToken(cookie.Name):
		issues = append(issues, "cookie.name must be an RFC 6265 token")
	}
	if cookie.Timeout < 0 {
		issues = append(issues, "cookie.timeout must be >= 0")
	}
	if cookie.Timeout > MaxTimeout {
		issues = append(issues, fmt.Sprintf("cookie.timeout must be <= %d", MaxTimeout))
	}
	if cookie.Path != "" {
		if strings.ContainsRune(cookie.Path, ';') || hasControl(cookie.Path) {
			issues = append(issues, "cookie.path must not contain ';' or control characters")
		}
	}
	if cookie.Domain != "" {
		if strings.ContainsAny(cookie.Domain, "; \t") || hasControl(cookie.Domain) {
			issues = append(issues, "cookie.domain must not contain ';', whitespace or control characters")
		}
	}

	if cfg.LogLevel != "" && !validLogLevel(cfg.LogLevel) {
		issues = append(issues, "log_level must be one of debug|info|warn|error")
	}
	if cfg.LogFormat != "" && !validLogFormat(cfg.LogFormat) {
		issues = append(issues, "log_format must be one of text|json")
	}

	if len(issues) > 0 {
		return apperr.Invalid(issues)
	}
	return nil
}

// Warnings reports settings that are accepted but that user agents may not
// honour as written.
func Warnings(cfg Config) []string {
	var warnings []string
	if cfg.Cookie.Path != "" && !strings.HasPrefix(cfg.Cookie.Path, "/") {
		warnings = append(warnings, "cookie.path does not start with /; user agents fall back to the request's default path")
	}
	return warnings
}

func validToken(value string) bool {
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c <= 0x20 || c >= 0x7f {
			return false
		}
		if strings.IndexByte(`()<>@,;:\"/[]?={}`, c) >= 0 {
			return false
		}
	}
	return true
}

func hasControl(value string) bool {
	for i := 0; i < len(value); i++ {
		if value[i] < 0x20 || value[i] == 0x7f {
			return true
		}
	}
	return false
}

func validLogLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

func validLogFormat(format string) bool {
	switch strings.ToLower(format) {
	case "text", "json":
		return true
	default:
		return false
	}
}
