package config

import (
	"os"

	"github.com/devmarvs/sesscookie/apperr"
	ini "gopkg.in/ini.v1"
)

// LoadFromINI loads the [session] and [log] sections of an INI file into the
// base config. Keys that are absent keep their base value.
//
//	[session]
//	COOKIE_NAME   = sid
//	COOKIE_PATH   = /
//	DOMAIN        = example.com
//	COOKIE_SECURE = true
//	HTTP_ONLY     = true
//	TIMEOUT       = 30
//
//	[log]
//	LEVEL  = debug
//	FORMAT = json
func LoadFromINI(path string, base Config) (Config, error) {
	return loadINI(path, base, false)
}

func loadINI(path string, base Config, allowMissing bool) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if allowMissing && os.IsNotExist(err) {
			return base, nil
		}
		return base, apperr.New(apperr.CodeConfigRead, "open "+path, err)
	}

	cfg, err := ini.Load(data)
	if err != nil {
		return base, apperr.New(apperr.CodeConfigParse, "parse "+path, err)
	}
	return applyINI(cfg, base), nil
}

func applyINI(cfg *ini.File, base Config) Config {
	sec := cfg.Section("session")
	base.Cookie.Name = sec.Key("COOKIE_NAME").MustString(base.Cookie.Name)
	base.Cookie.Path = sec.Key("COOKIE_PATH").MustString(base.Cookie.Path)
	base.Cookie.Domain = sec.Key("DOMAIN").MustString(base.Cookie.Domain)
	base.Cookie.Secure = sec.Key("COOKIE_SECURE").MustBool(base.Cookie.Secure)
	base.Cookie.HTTPOnly = sec.Key("HTTP_ONLY").MustBool(base.Cookie.HTTPOnly)
	base.Cookie.Timeout = sec.Key("TIMEOUT").MustInt(base.Cookie.Timeout)

	sec = cfg.Section("log")
	base.LogLevel = sec.Key("LEVEL").MustString(base.LogLevel)
	base.LogFormat = sec.Key("FORMAT").MustString(base.LogFormat)
	return base
}
