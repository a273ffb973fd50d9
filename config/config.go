package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"evently/internal/errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultPort               = 5000
	defaultClientURL          = "http://localhost:8000"
	defaultTokenTTL           = time.Hour
	defaultTokenIssuer        = "evently"
	defaultStateTTL           = 10 * time.Minute
	defaultGoogleScopes       = "openid email profile"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Client is the browser application allowed to call the API cross-origin.
	Client struct {
		URL string `json:"url" yaml:"url"`
	} `json:"client" yaml:"client"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Database tunes the pool opened from Postgres and controls schema migrations.
	Database *DatabaseConfig `json:"database" yaml:"database"`

	// Redis is optional; without it OAuth state is kept in process memory.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Session string `json:"session" yaml:"session"`
	} `json:"secretKey" yaml:"secretKey"`

	Token *TokenConfig `json:"token" yaml:"token"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`
}

type DatabaseConfig struct {
	MaxOpenConns    int           `json:"maxOpenConns" yaml:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns" yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime" yaml:"connMaxLifetime"`
	AutoMigrate     bool          `json:"autoMigrate" yaml:"autoMigrate"`
	// MigrationURL is the postgres:// URL golang-migrate connects with.
	MigrationURL string `json:"migrationUrl" yaml:"migrationUrl"`
}

type RedisConfig struct {
	URL string `json:"url" yaml:"url"`
}

// TokenConfig defines bearer token issuance.
type TokenConfig struct {
	TTL    time.Duration `json:"ttl" yaml:"ttl"`
	Issuer string        `json:"issuer" yaml:"issuer"`
}

type GoogleOAuthConfig struct {
	ClientID     string        `json:"clientId" yaml:"clientId"`
	ClientSecret string        `json:"clientSecret" yaml:"clientSecret"`
	RedirectURI  string        `json:"redirectUri" yaml:"redirectUri"`
	Scopes       string        `json:"scopes" yaml:"scopes"`
	StateTTL     time.Duration `json:"stateTTL" yaml:"stateTTL"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override the file.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// POSTGRES_SSLMODE -> postgres.sslMode, SECRETKEY_ACCESS -> secretKey.access
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// New loads config.yaml plus environment overrides, fills defaults and
// validates the result. It is the fx provider for *Config.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	// Replicas come from POSTGRES_REPLICAS_{index}_{field} when set.
	if replicas := buildReplicasFromEnv(); len(replicas) > 0 && cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicas
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultPort
	}
	if cfg.Client.URL == "" {
		cfg.Client.URL = defaultClientURL
	}
	cfg.Client.URL = strings.TrimRight(cfg.Client.URL, "/")

	if cfg.Token == nil {
		cfg.Token = &TokenConfig{}
	}
	if cfg.Token.TTL <= 0 {
		cfg.Token.TTL = defaultTokenTTL
	}
	if cfg.Token.Issuer == "" {
		cfg.Token.Issuer = defaultTokenIssuer
	}

	if cfg.GoogleOAuth == nil {
		cfg.GoogleOAuth = &GoogleOAuthConfig{}
	}
	if cfg.GoogleOAuth.Scopes == "" {
		cfg.GoogleOAuth.Scopes = defaultGoogleScopes
	}
	if cfg.GoogleOAuth.StateTTL <= 0 {
		cfg.GoogleOAuth.StateTTL = defaultStateTTL
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}

	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}
}

// Validate rejects configurations the service cannot start with.
func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.SecretKey.Access) == "" {
		return errors.New("secretKey.access (token signing secret) must be provided")
	}
	if cfg.Postgres == nil {
		return errors.New("postgres connection must be provided")
	}
	if cfg.Database != nil && cfg.Database.AutoMigrate {
		if err := validateMigrationURL(cfg.Database.MigrationURL); err != nil {
			return err
		}
	}

	return nil
}

// validateMigrationURL accepts only URL-form DSNs; golang-migrate cannot parse key=value DSNs.
func validateMigrationURL(raw string) error {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed.Host == "" || (parsed.Scheme != "postgres" && parsed.Scheme != "postgresql") {
		return errors.New("database.migrationUrl must be a postgres:// URL when autoMigrate is enabled")
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
