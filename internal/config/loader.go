package config

// LoadFromEnv builds the configuration from the process environment. Dev
// builds read a .env file first; release builds skip that step.
func LoadFromEnv() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}
	return Load(FromEnviron())
}
