package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	FeatureFlags FeatureFlagsConfig
	Checkout     CheckoutConfig
	Gateways     GatewaysConfig
	Idempotency  IdempotencyConfig
	CORS         CORSConfig
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
	Env          string `envconfig:"LABELLE_APP_ENV" required:"true"`
	Port         string `envconfig:"LABELLE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"LABELLE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"LABELLE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"LABELLE_DB_DSN"`
	Driver string `envconfig:"LABELLE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"LABELLE_DB_HOST"`
	LegacyPort     int    `envconfig:"LABELLE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"LABELLE_DB_USER"`
	LegacyPassword string `envconfig:"LABELLE_DB_PASSWORD"`
	LegacyName     string `envconfig:"LABELLE_DB_NAME"`
	LegacySSLMode  string `envconfig:"LABELLE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"LABELLE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"LABELLE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"LABELLE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"LABELLE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"LABELLE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"LABELLE_REDIS_ADDR"`
	Password     string        `envconfig:"LABELLE_REDIS_PASSWORD"`
	DB           int           `envconfig:"LABELLE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"LABELLE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"LABELLE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"LABELLE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"LABELLE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"LABELLE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"LABELLE_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"LABELLE_AUTO_MIGRATE" default:"false"`
}

// CheckoutConfig carries the fixed pricing constants of the menu. The tax
// rate applies to the subtotal only; the delivery surcharge stays outside
// the tax base.
type CheckoutConfig struct {
	DeliveryFee decimal.Decimal `envconfig:"LABELLE_CHECKOUT_DELIVERY_FEE" default:"3.99"`
	TaxRate     decimal.Decimal `envconfig:"LABELLE_CHECKOUT_TAX_RATE" default:"0.19"`
	MaxSlots    int             `envconfig:"LABELLE_CHECKOUT_MAX_PICKUP_SLOTS" default:"12"`
}

type GatewaysConfig struct {
	PaymentDelay time.Duration `envconfig:"LABELLE_GATEWAY_PAYMENT_DELAY" default:"1s"`
	NotifyDelay  time.Duration `envconfig:"LABELLE_GATEWAY_NOTIFY_DELAY" default:"500ms"`
}

type IdempotencyConfig struct {
	SubmissionTTL time.Duration `envconfig:"LABELLE_IDEMPOTENCY_SUBMISSION_TTL" default:"24h"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"LABELLE_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

func (db *DBConfig) ensureDSN() error {
	if strings.EqualFold(db.Driver, DriverSQLite) {
		if db.DSN == "" {
			return fmt.Errorf("%s is required when the sqlite driver is selected", EnvDBDSN)
		}
		return nil
	}

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
