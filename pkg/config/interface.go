package config

// Load applies the config file named by cfg, if any, and validates the result.
func Load(cfg *Config) error {
	if path := cfg.ConfigFilePath(); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return err
		}
	}
	return cfg.Validate()
}
