package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "10MB"
	defaultPort               = 4000
	defaultMaxOpenConns       = 10
	defaultBcryptCost         = 10
	defaultMinPasswordLength  = 6
	defaultImagePublicPrefix  = "./img"

	// DriverMySQL selects gorm.io/driver/mysql.
	DriverMySQL = "mysql"
	// DriverPostgres selects the go-lib postgres client.
	DriverPostgres = "postgres"
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

	Database DatabaseConfig `json:"database" yaml:"database"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Upload *UploadConfig `json:"upload" yaml:"upload"`
}

// DatabaseConfig selects the store driver and its connection settings.
type DatabaseConfig struct {
	Driver   string           `json:"driver" yaml:"driver"`
	MySQL    *MySQLConfig     `json:"mysql" yaml:"mysql"`
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`
	Pool     PoolConfig       `json:"pool" yaml:"pool"`

	// SlowQueryThreshold marks statements logged as slow. Zero keeps the default of 200ms.
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// MySQLConfig mirrors the DB_HOST/DB_USER/DB_PASS/DB_NAME/DB_PORT settings of the admin API.
type MySQLConfig struct {
	Host     string         `json:"host" yaml:"host"`
	Port     int            `json:"port" yaml:"port"`
	User     string         `json:"user" yaml:"user"`
	Password string         `json:"password" yaml:"password"`
	Database string         `json:"database" yaml:"database"`
	Replicas []MySQLReplica `json:"replicas" yaml:"replicas"`
}

// MySQLReplica is a read-only replica served through dbresolver.
type MySQLReplica struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	User     string `json:"user" yaml:"user"`
	Password string `json:"password" yaml:"password"`
}

// PoolConfig bounds connection reuse. Requests beyond MaxOpenConns wait for a free connection.
type PoolConfig struct {
	MaxOpenConns    int           `json:"maxOpenConns" yaml:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns" yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime" yaml:"connMaxLifetime"`
	ConnMaxIdleTime time.Duration `json:"connMaxIdleTime" yaml:"connMaxIdleTime"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	MinPasswordLength int           `json:"minPasswordLength" yaml:"minPasswordLength"`
	RequireToken      bool          `json:"requireToken" yaml:"requireToken"`
	AccessTokenTTL    time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
}

// UploadConfig locates the bucket that receives uploaded images.
type UploadConfig struct {
	// BucketURL is any gocloud.dev blob URL, e.g. file:///srv/aeoncommerce/public/img
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	// PublicPrefix is prepended to the object key in the stored img column.
	PublicPrefix string `json:"publicPrefix" yaml:"publicPrefix"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// DATABASE_MYSQL_HOST -> database.mysql.host, HTTP_MAXREQUESTBODYSIZE -> http.maxRequestBodySize
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
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

// New loads .env (when present), config.yaml and environment overrides, then fills defaults.
func New() (*Config, error) {
	if err := loadDotEnv(".env", "../.env"); err != nil {
		return nil, err
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	applyLegacyDBEnv(cfg)

	if cfg.Database.MySQL != nil && len(cfg.Database.MySQL.Replicas) == 0 {
		cfg.Database.MySQL.Replicas = buildMySQLReplicasFromEnv()
	}
	if cfg.Database.Postgres != nil && len(cfg.Database.Postgres.Replicas) == 0 {
		cfg.Database.Postgres.Replicas = buildPostgresReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports configuration that cannot produce a working store.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverMySQL:
		if c.Database.MySQL == nil || c.Database.MySQL.Host == "" {
			return errors.New("database.mysql.host is required for the mysql driver")
		}
	case DriverPostgres:
		if c.Database.Postgres == nil {
			return errors.New("database.postgres is required for the postgres driver")
		}
	default:
		return errors.Errorf("unsupported database driver: %q", c.Database.Driver)
	}

	return nil
}

// MinPasswordLength returns the configured minimum, falling back to 6.
func (c *Config) MinPasswordLength() int {
	if c.Auth == nil || c.Auth.MinPasswordLength <= 0 {
		return defaultMinPasswordLength
	}

	return c.Auth.MinPasswordLength
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultPort
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = DriverMySQL
	}
	if cfg.Database.Pool.MaxOpenConns <= 0 {
		cfg.Database.Pool.MaxOpenConns = defaultMaxOpenConns
	}
	if cfg.Database.Pool.MaxIdleConns <= 0 || cfg.Database.Pool.MaxIdleConns > cfg.Database.Pool.MaxOpenConns {
		cfg.Database.Pool.MaxIdleConns = cfg.Database.Pool.MaxOpenConns
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}
	if cfg.Upload == nil {
		cfg.Upload = &UploadConfig{}
	}
	if cfg.Upload.PublicPrefix == "" {
		cfg.Upload.PublicPrefix = defaultImagePublicPrefix
	}
}

// applyLegacyDBEnv honours the DB_HOST/DB_USER/DB_PASS/DB_NAME/DB_PORT variables
// that existing deployments keep in their .env files.
func applyLegacyDBEnv(cfg *Config) {
	if cfg.Database.Driver != DriverMySQL {
		return
	}
	if cfg.Database.MySQL == nil {
		cfg.Database.MySQL = &MySQLConfig{}
	}

	mysqlCfg := cfg.Database.MySQL
	if v := os.Getenv("DB_HOST"); v != "" {
		mysqlCfg.Host = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		mysqlCfg.User = v
	}
	if v := os.Getenv("DB_PASS"); v != "" {
		mysqlCfg.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		mysqlCfg.Database = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			mysqlCfg.Port = port
		}
	}
	if mysqlCfg.Port == 0 {
		mysqlCfg.Port = 3306
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Port = port
		}
	}
}

func loadDotEnv(candidates ...string) error {
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		// Existing environment variables win over the file.
		if err := godotenv.Load(path); err != nil {
			return errors.Wrapf(err, "load %s", path)
		}

		return nil
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

// buildMySQLReplicasFromEnv reads DATABASE_MYSQL_REPLICAS_{index}_{HOST,PORT,USER,PASSWORD}.
func buildMySQLReplicasFromEnv() []MySQLReplica {
	var replicas []MySQLReplica

	for i := 0; ; i++ {
		prefix := "DATABASE_MYSQL_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port, err := strconv.Atoi(os.Getenv(prefix + "PORT"))
		if host == "" || err != nil {
			break
		}

		replicas = append(replicas, MySQLReplica{
			Host:     host,
			Port:     port,
			User:     os.Getenv(prefix + "USER"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}

// buildPostgresReplicasFromEnv reads DATABASE_POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}.
func buildPostgresReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "DATABASE_POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

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
