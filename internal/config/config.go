package config

import (
	"os"
	"strconv"
	"time"

	"github.com/go-yaml/yaml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/totegamma/storykeep/internal/domain"
)

type Config struct {
	Auth   Auth   `yaml:"auth"`
	Server Server `yaml:"server"`
}

type Auth struct {
	Issuer     string `yaml:"issuer"`
	Secret     string `yaml:"secret"`
	AccessTTL  string `yaml:"accessTTL"`  // e.g. 15m
	RefreshTTL string `yaml:"refreshTTL"` // e.g. 168h

	// ---
	accessTTL  time.Duration
	refreshTTL time.Duration
}

type Server struct {
	ListenAddr    string `yaml:"listenAddr"`
	PostgresDsn   string `yaml:"postgresDsn"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisPassword string `yaml:"redisPassword"`
	RedisDB       int    `yaml:"redisDB"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
}

func defaults() Config {
	return Config{
		Auth: Auth{
			Issuer:     "storykeep",
			AccessTTL:  "15m",
			RefreshTTL: "168h",
		},
		Server: Server{
			ListenAddr: ":8000",
		},
	}
}

// Load reads the YAML file at path, then applies STORYKEEP_* variables from
// the environment or a .env file. An empty path skips the file.
func Load(path string) (Config, error) {
	config := defaults()

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return Config{}, errors.Wrap(err, "config.Load")
		}
		defer file.Close()

		err = yaml.NewDecoder(file).Decode(&config)
		if err != nil {
			return Config{}, errors.Wrap(err, "config.Load: decode")
		}
	}

	// .env is optional
	_ = godotenv.Load()

	if err := config.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c *Config) applyEnv() error {
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	str("STORYKEEP_LISTEN_ADDR", &c.Server.ListenAddr)
	str("STORYKEEP_POSTGRES_DSN", &c.Server.PostgresDsn)
	str("STORYKEEP_REDIS_ADDR", &c.Server.RedisAddr)
	str("STORYKEEP_REDIS_PASSWORD", &c.Server.RedisPassword)
	str("STORYKEEP_TRACE_ENDPOINT", &c.Server.TraceEndpoint)
	str("STORYKEEP_JWT_SECRET", &c.Auth.Secret)
	str("STORYKEEP_JWT_ISSUER", &c.Auth.Issuer)

	if v, ok := os.LookupEnv("STORYKEEP_REDIS_DB"); ok {
		db, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "STORYKEEP_REDIS_DB")
		}
		c.Server.RedisDB = db
	}
	if v, ok := os.LookupEnv("STORYKEEP_ENABLE_TRACE"); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrap(err, "STORYKEEP_ENABLE_TRACE")
		}
		c.Server.EnableTrace = enabled
	}
	return nil
}

func (c *Config) Validate() error {
	var err error
	if c.Auth.accessTTL, err = time.ParseDuration(c.Auth.AccessTTL); err != nil {
		return errors.Wrap(err, "auth.accessTTL")
	}
	if c.Auth.refreshTTL, err = time.ParseDuration(c.Auth.RefreshTTL); err != nil {
		return errors.Wrap(err, "auth.refreshTTL")
	}
	if c.Auth.Secret == "" {
		return errors.New("auth.secret must be set")
	}
	if c.Server.PostgresDsn == "" {
		return errors.New("server.postgresDsn must be set")
	}
	if c.Server.EnableTrace && c.Server.TraceEndpoint == "" {
		return errors.New("server.traceEndpoint must be set when tracing is enabled")
	}
	return nil
}

func (c Config) AuthConfig() domain.AuthConfig {
	return domain.AuthConfig{
		Issuer:     c.Auth.Issuer,
		Secret:     c.Auth.Secret,
		AccessTTL:  c.Auth.accessTTL,
		RefreshTTL: c.Auth.refreshTTL,
	}
}
