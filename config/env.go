package config

import (
	"os"
	"strconv"
)

// LoadFromEnv applies environment overrides with a prefix (e.g. SESSCOOKIE_).
func LoadFromEnv(prefix string, base Config) Config {
	get := func(key string) string { return os.Getenv(prefix + key) }

	if value := get("COOKIE_NAME"); value != "" {
		base.Cookie.Name = value
	}
	if value := get("COOKIE_PATH"); value != "" {
		base.Cookie.Path = value
	}
	if value := get("COOKIE_DOMAIN"); value != "" {
		base.Cookie.Domain = value
	}
	if value := get("COOKIE_TIMEOUT"); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			base.Cookie.Timeout = n
		}
	}
	if value := get("COOKIE_SECURE"); value != "" {
		if enabled, err := strconv.ParseBool(value); err == nil {
			base.Cookie.Secure = enabled
		}
	}
	if value := get("COOKIE_HTTP_ONLY"); value != "" {
		if enabled, err := strconv.ParseBool(value); err == nil {
			base.Cookie.HTTPOnly = enabled
		}
	}
	if value := get("LOG_LEVEL"); value != "" {
		base.LogLevel = value
	}
	if value := get("LOG_FORMAT"); value != "" {
		base.LogFormat = value
	}

	return base
}
