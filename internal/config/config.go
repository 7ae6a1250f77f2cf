package config

import (
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port" default:"8080"`
		Host         string        `yaml:"host" default:"0.0.0.0"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"30s"`
		IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`
	} `yaml:"server"`

	Search struct {
		RequestTimeout   time.Duration `yaml:"request_timeout" default:"5s"`   // per provider call
		FailureThreshold int           `yaml:"failure_threshold" default:"3"`  // consecutive failures before the circuit opens
		CircuitCooldown  time.Duration `yaml:"circuit_cooldown" default:"60s"` // how long an open circuit stays open
		MinProviderDelay time.Duration `yaml:"min_provider_delay" default:"1s"`
		DefaultLimit     int           `yaml:"default_limit" default:"20"`
		MaxLimit         int           `yaml:"max_limit" default:"100"`
	} `yaml:"search"`

	Providers struct {
		Adzuna struct {
			BaseURL string `yaml:"base_url" default:"https://api.adzuna.com/v1/api/jobs"`
			Country string `yaml:"country" default:"us"`
			AppID   string `yaml:"app_id"`
			AppKey  string `yaml:"app_key"`
		} `yaml:"adzuna"`
		Jooble struct {
			BaseURL string `yaml:"base_url" default:"https://jooble.org/api"`
			APIKey  string `yaml:"api_key"`
		} `yaml:"jooble"`
		Remotive struct {
			BaseURL string `yaml:"base_url" default:"https://remotive.com/api"`
		} `yaml:"remotive"`
		Arbeitnow struct {
			BaseURL string `yaml:"base_url" default:"https://www.arbeitnow.com/api"`
		} `yaml:"arbeitnow"`
	} `yaml:"providers"`

	Cache struct {
		Enabled bool          `yaml:"enabled" default:"false"`
		TTL     time.Duration `yaml:"ttl" default:"5m"`
	} `yaml:"cache"`

	Redis struct {
		URL      string        `yaml:"url" default:"redis://localhost:6379"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db" default:"0"`
		Timeout  time.Duration `yaml:"timeout" default:"5s"`
	} `yaml:"redis"`

	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"json"`
		Output string `yaml:"output" default:"stdout"`

		Adapters []struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		} `yaml:"adapters"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second

	config.Search.RequestTimeout = 5 * time.Second
	config.Search.FailureThreshold = 3
	config.Search.CircuitCooldown = 60 * time.Second
	config.Search.MinProviderDelay = 1 * time.Second
	config.Search.DefaultLimit = 20
	config.Search.MaxLimit = 100

	config.Providers.Adzuna.BaseURL = "https://api.adzuna.com/v1/api/jobs"
	config.Providers.Adzuna.Country = "us"
	config.Providers.Jooble.BaseURL = "https://jooble.org/api"
	config.Providers.Remotive.BaseURL = "https://remotive.com/api"
	config.Providers.Arbeitnow.BaseURL = "https://www.arbeitnow.com/api"

	config.Cache.TTL = 5 * time.Minute

	config.Redis.URL = "redis://localhost:6379"
	config.Redis.DB = 0
	config.Redis.Timeout = 5 * time.Second

	config.Logging.Level = "info"
	config.Logging.Format = "json"
	config.Logging.Output = "stdout"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			// Expand environment variables in the YAML content
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}

	if timeout := os.Getenv("SEARCH_REQUEST_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Search.RequestTimeout = d
		}
	}

	if threshold := os.Getenv("SEARCH_FAILURE_THRESHOLD"); threshold != "" {
		if n, err := strconv.Atoi(threshold); err == nil && n > 0 {
			c.Search.FailureThreshold = n
		}
	}

	if cooldown := os.Getenv("SEARCH_CIRCUIT_COOLDOWN"); cooldown != "" {
		if d, err := time.ParseDuration(cooldown); err == nil {
			c.Search.CircuitCooldown = d
		}
	}

	if delay := os.Getenv("SEARCH_MIN_PROVIDER_DELAY"); delay != "" {
		if d, err := time.ParseDuration(delay); err == nil {
			c.Search.MinProviderDelay = d
		}
	}

	if appID := os.Getenv("ADZUNA_APP_ID"); appID != "" {
		c.Providers.Adzuna.AppID = appID
	}

	if appKey := os.Getenv("ADZUNA_APP_KEY"); appKey != "" {
		c.Providers.Adzuna.AppKey = appKey
	}

	if country := os.Getenv("ADZUNA_COUNTRY"); country != "" {
		c.Providers.Adzuna.Country = country
	}

	if apiKey := os.Getenv("JOOBLE_API_KEY"); apiKey != "" {
		c.Providers.Jooble.APIKey = apiKey
	}

	if enabled := os.Getenv("CACHE_ENABLED"); enabled != "" {
		c.Cache.Enabled = enabled == "true" || enabled == "1"
	}

	if ttl := os.Getenv("CACHE_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			c.Cache.TTL = d
		}
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		c.Redis.URL = redisURL
	}

	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		c.Redis.Password = redisPassword
	}

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		if db, err := strconv.Atoi(redisDB); err == nil {
			c.Redis.DB = db
		}
	}

	if redisTimeout := os.Getenv("REDIS_TIMEOUT"); redisTimeout != "" {
		if timeout, err := time.ParseDuration(redisTimeout); err == nil {
			c.Redis.Timeout = timeout
		}
	}
}
