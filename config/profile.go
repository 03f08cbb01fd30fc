package config

// Profile describes layered config sources.
type Profile struct {
	BasePath     string
	EnvPath      string
	SecretsPath  string
	EnvPrefix    string
	AllowMissing bool
}

// Loader composes layered config with defaults and validation.
type Loader[T any] struct {
	Defaults func() T
	Decode   func(path string, base T, allowMissing bool) (T, error)
	ApplyEnv func(prefix string, base T) T
	Validate func(cfg T) error
}

// Load merges profile layers into a typed config. Decode defaults to JSON.
func (l Loader[T]) Load(profile Profile) (T, error) {
	var cfg T
	if l.Defaults != nil {
		cfg = l.Defaults()
	}

	decode := l.Decode
	if decode == nil {
		decode = loadJSON[T]
	}

	var err error
	for _, path := range []string{profile.BasePath, profile.EnvPath, profile.SecretsPath} {
		if path == "" {
			continue
		}
		cfg, err = decode(path, cfg, profile.AllowMissing)
		if err != nil {
			return cfg, err
		}
	}
	if profile.EnvPrefix != "" && l.ApplyEnv != nil {
		cfg = l.ApplyEnv(profile.EnvPrefix, cfg)
	}
	if l.Validate != nil {
		if err := l.Validate(cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// LoadProfile loads Config from a layered profile with validation.
func LoadProfile(profile Profile) (Config, error) {
	loader := Loader[Config]{
		Defaults: Default,
		Decode:   decodeFile,
		ApplyEnv: LoadFromEnv,
		Validate: Validate,
	}
	return loader.Load(profile)
}

func decodeFile(path string, base Config, allowMissing bool) (Config, error) {
	if isINI(path) {
		return loadINI(path, base, allowMissing)
	}
	return loadJSON(path, base, allowMissing)
}
