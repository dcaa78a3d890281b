package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr          string        `yaml:"addr"`
	JWTSecret     string        `yaml:"jwt_secret"`
	APITimeout    time.Duration `yaml:"timeout"`
	DatabasePath  string        `yaml:"database_path"`
	TokenDuration time.Duration `yaml:"token_duration"`
	Hint          HintConfig    `yaml:"hint"`
}

// HintConfig holds settings for the AI hint provider. The provider stays
// disabled unless both BaseURL and Model are set.
type HintConfig struct {
	BaseURL                 string        `yaml:"base_url"`
	Model                   string        `yaml:"model"`
	Timeout                 time.Duration `yaml:"timeout"`
	Retries                 int           `yaml:"retries"`
	Backoff                 time.Duration `yaml:"backoff"`
	CircuitFailureThreshold int           `yaml:"circuit_failure_threshold"`
	CircuitReset            time.Duration `yaml:"circuit_reset"`
}

// Enabled reports whether the hint provider is configured.
func (h HintConfig) Enabled() bool {
	return h.BaseURL != "" && h.Model != ""
}

func LoadConfig(path string) (*Config, error) {
	apiTimeout := 15 * time.Second
	tokenDuration := 24 * time.Hour

	cfg := &Config{
		Addr:          getEnv("STUDIO_ADDR", ":8080"),
		JWTSecret:     getEnv("STUDIO_JWT_SECRET", "supersecretkey"),
		APITimeout:    apiTimeout,
		DatabasePath:  getEnv("STUDIO_DATABASE_PATH", "studio.db"),
		TokenDuration: tokenDuration,
		Hint: HintConfig{
			BaseURL:                 getEnv("STUDIO_HINT_BASE_URL", ""),
			Model:                   getEnv("STUDIO_HINT_MODEL", ""),
			Timeout:                 30 * time.Second,
			Retries:                 3,
			Backoff:                 500 * time.Millisecond,
			CircuitFailureThreshold: 5,
			CircuitReset:            30 * time.Second,
		},
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
