package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/devmarvs/sesscookie/apperr"
)

// LoadFromFile loads configuration from a JSON file into the base config.
func LoadFromFile(path string, base Config) (Config, error) {
	return loadJSON(path, base, false)
}

// Load loads config from file (if provided), applies env overrides and
// validates the result. Files ending in .ini are read as INI, anything else
// as JSON.
func Load(path, envPrefix string) (Config, error) {
	return LoadProfile(Profile{BasePath: path, EnvPrefix: envPrefix})
}

func isINI(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".ini")
}

func loadJSON[T any](path string, base T, allowMissing bool) (T, error) {
	file, err := os.Open(path)
	if err != nil {
		if allowMissing && os.IsNotExist(err) {
			return base, nil
		}
		return base, apperr.New(apperr.CodeConfigRead, "open "+path, err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&base); err != nil {
		return base, apperr.New(apperr.CodeConfigParse, "decode "+path, err)
	}
	return base, nil
}
