package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

// EnvPrefix is prepended to every environment override, e.g. CLOUDSOLAR_JWT_SECRETKEY.
const EnvPrefix = "CLOUDSOLAR"

const ModeProduction = "production"

var ErrConfiguration = errors.New("configuration error")

type Config struct {
	Mode     string `mapstructure:"mode"`
	Dotenv   string `mapstructure:"dotenv"`
	Handlers struct {
		Prometheus struct {
			Port string `mapstructure:"port"`
		} `mapstructure:"prometheus"`
	} `mapstructure:"handlers"`
	Repositories struct {
		Postgres struct {
			Host              string `mapstructure:"host"`
			Password          string `mapstructure:"password"`
			Port              string `mapstructure:"port"`
			Username          string `mapstructure:"username"`
			DB                string `mapstructure:"db"`
			SSLMODE           string `mapstructure:"SSLMODE"`
			MAXCONWAITINGTIME int    `mapstructure:"MAXCONWAITINGTIME"`
		} `mapstructure:"postgres"`
	} `mapstructure:"repositories"`
	Server struct {
		HTTPPort string        `mapstructure:"HTTPPort"`
		Timeout  time.Duration `mapstructure:"HTTPTimeout"`
	} `mapstructure:"server"`
	JWT   JWTConfig  `mapstructure:"jwt"`
	Auth  AuthConfig `mapstructure:"auth"`
	Cache struct {
		DefaultExpiration time.Duration `mapstructure:"defaultExpiration"`
		CleanupInterval   time.Duration `mapstructure:"cleanupInterval"`
	} `mapstructure:"cache"`
	Seed struct {
		UsersFile string `mapstructure:"usersFile"`
	} `mapstructure:"seed"`
}

type JWTConfig struct {
	SecretKey      string        `mapstructure:"secretKey"`
	AccessTokenTTL time.Duration `mapstructure:"accessTokenTTL"`
	Issuer         string        `mapstructure:"issuer"`
	Audience       string        `mapstructure:"audience"`
}

type AuthConfig struct {
	DevAPIKey string        `mapstructure:"devApiKey"`
	DevUserID int64         `mapstructure:"devUserId"`
	Session   SessionConfig `mapstructure:"session"`
}

// SessionConfig describes the optional external session service whose access tokens are
// verified against its published JWKS.
type SessionConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	JWKSURL         string        `mapstructure:"jwksUrl"`
	CookieName      string        `mapstructure:"cookieName"`
	RefreshInterval time.Duration `mapstructure:"refreshInterval"`
}

func InitConfig() (Config, error) {
	var config Config
	v := viper.New()

	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.applyDefaults()
	fmt.Println("Successfully loaded app configs...")
	return config, nil
}

func (c *Config) applyDefaults() {
	if c.JWT.AccessTokenTTL <= 0 {
		c.JWT.AccessTokenTTL = 30 * time.Minute
	}
	if c.Auth.Session.CookieName == "" {
		c.Auth.Session.CookieName = "sAccessToken"
	}
	if c.Auth.Session.RefreshInterval <= 0 {
		c.Auth.Session.RefreshInterval = time.Hour
	}
	if c.Server.Timeout <= 0 {
		c.Server.Timeout = 60 * time.Second
	}
	if c.Cache.DefaultExpiration <= 0 {
		c.Cache.DefaultExpiration = 5 * time.Minute
	}
	if c.Cache.CleanupInterval <= 0 {
		c.Cache.CleanupInterval = 10 * time.Minute
	}
}

// Validate reports settings the process cannot start without.
func (c *Config) Validate() error {
	if c.JWT.SecretKey == "" {
		return fmt.Errorf("%w: jwt.secretKey is not set", ErrConfiguration)
	}
	if c.Auth.Session.Enabled && c.Auth.Session.JWKSURL == "" {
		return fmt.Errorf("%w: auth.session.jwksUrl is required when the session service is enabled", ErrConfiguration)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Mode, ModeProduction)
}

// DevBypassAllowed is true only outside production and when a developer key is configured.
func (c *Config) DevBypassAllowed() bool {
	return !c.IsProduction() && c.Auth.DevAPIKey != ""
}
