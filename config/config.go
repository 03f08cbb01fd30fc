package config

import "github.com/devmarvs/sesscookie"

// Config holds the cookie policy and logging settings.
type Config struct {
	Cookie sesscookie.Policy `json:"cookie"`

	LogLevel  string `json:"log_level"`
	LogFormat string `json:"log_format"`
}

// Default returns safe defaults.
func Default() Config {
	return Config{
		Cookie: sesscookie.Policy{
			Name:     "session",
			Path:     "/",
			HTTPOnly: true,
		},
		LogLevel:  "info",
		LogFormat: "text",
	}
}
