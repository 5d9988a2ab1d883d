package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "SAFARI"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "SAFARI_DB_DSN"
	EnvDBHost = "SAFARI_DB_HOST"
	EnvDBUser = "SAFARI_DB_USER"
	EnvDBName = "SAFARI_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	GCP          GCPConfig
	PubSub       PubSubConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SAFARI_APP_ENV" required:"true"`
	Port         string `envconfig:"SAFARI_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"SAFARI_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SAFARI_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"SAFARI_DB_DSN"`
	Driver string `envconfig:"SAFARI_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"SAFARI_DB_HOST"`
	LegacyPort     int    `envconfig:"SAFARI_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SAFARI_DB_USER"`
	LegacyPassword string `envconfig:"SAFARI_DB_PASSWORD"`
	LegacyName     string `envconfig:"SAFARI_DB_NAME"`
	LegacySSLMode  string `envconfig:"SAFARI_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SAFARI_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SAFARI_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SAFARI_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SAFARI_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"SAFARI_REDIS_URL" required:"true"`
	Address      string        `envconfig:"SAFARI_REDIS_ADDR"`
	Password     string        `envconfig:"SAFARI_REDIS_PASSWORD"`
	DB           int           `envconfig:"SAFARI_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SAFARI_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SAFARI_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SAFARI_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SAFARI_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SAFARI_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type GCPConfig struct {
	ProjectID              string `envconfig:"SAFARI_GCP_PROJECT_ID"`
	CredentialsJSON        string `envconfig:"SAFARI_GCP_CREDENTIALS_JSON"`
	ApplicationCredentials string `envconfig:"SAFARI_GOOGLE_APPLICATION_CREDENTIALS"`
}

type PubSubConfig struct {
	PackageEventsTopic string `envconfig:"SAFARI_PUBSUB_PACKAGE_EVENTS_TOPIC" default:"safari-package-events"`
}

type FeatureFlagsConfig struct {
	AutoMigrate   bool `envconfig:"SAFARI_AUTO_MIGRATE" default:"false"`
	PublishEvents bool `envconfig:"SAFARI_FEATURE_PUBLISH_EVENTS" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
