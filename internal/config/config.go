package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `env:"ENV" env-required:"true"`
	LogLevel   string `env:"LOG_LEVEL" env-default:"info" env-description:"logging level, debug, info, etc."`
	HttpServer HttpServer
	Database   Database
	Limiter    Limiter
	Auth       AuthConfig
	Draft      DraftConfig
	Stripe     StripeConfig
	Storage    StorageConfig
	SMTP       SMTPConfig
	Email      EmailConfig
	Cache      Cache
}

type HttpServer struct {
	Port           string        `env:"HTTP_PORT" env-default:"8080"`
	Timeout        time.Duration `env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout    time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	SwaggerEnabled bool          `env:"HTTP_SWAGGER_ENABLED" env-default:"false"`
	AllowedOrigins []string      `env:"HTTP_ALLOWED_ORIGINS" env-default:"http://localhost:3000" env-description:"origins allowed by CORS"`
}

type Database struct {
	Net                string        `env:"DB_NET" env-default:"tcp"`
	Server             string        `env:"DB_SERVER" env-required:"true"`
	DBName             string        `env:"DB_NAME" env-required:"true"`
	User               string        `env:"DB_USER" env-required:"true"`
	Password           string        `env:"DB_PASSWORD" env-required:"true"`
	TimeZone           string        `env:"DB_TIMEZONE"`
	Timeout            time.Duration `env:"DB_TIMEOUT" env-default:"2s"`
	MaxIdleConnections int           `env:"DB_MAX_IDLE_CONNECTIONS" env-default:"40"`
	MaxOpenConnections int           `env:"DB_MAX_OPEN_CONNECTIONS" env-default:"40"`
}

type Limiter struct {
	RPS   int           `env:"LIMITER_RPS" env-default:"10"`
	Burst int           `env:"LIMITER_BURST" env-default:"20"`
	TTL   time.Duration `env:"LIMITER_TTL" env-default:"10m"`
}

type AuthConfig struct {
	JWT          JWTConfig
	PasswordSalt string `env:"AUTH_PASSWORD_SALT" env-required:"true"`
}

type JWTConfig struct {
	AccessTokenTTL time.Duration `env:"JWT_ACCESS_TOKEN_TTL" env-default:"12h"`
	SigningKey     string        `env:"JWT_SIGNING_KEY" env-required:"true"`
}

// DraftConfig covers the step-one registration draft: the signing key for
// the draft token and the encryption key for the cookie that carries it.
// Both are required, the process refuses to start without them.
type DraftConfig struct {
	SigningKey string        `env:"DRAFT_SIGNING_KEY" env-required:"true"`
	CookieKey  string        `env:"DRAFT_COOKIE_KEY" env-required:"true" env-description:"32-byte AES key for the draft cookie"`
	CookieName string        `env:"DRAFT_COOKIE_NAME" env-default:"club_registration_draft"`
	TTL        time.Duration `env:"DRAFT_TTL" env-default:"2h"`
}

type StripeConfig struct {
	SecretKey     string `env:"STRIPE_SECRET_KEY" env-required:"true"`
	WebhookSecret string `env:"STRIPE_WEBHOOK_SECRET" env-required:"true"`
	SuccessURL    string `env:"STRIPE_SUCCESS_URL" env-required:"true"`
	CancelURL     string `env:"STRIPE_CANCEL_URL" env-required:"true"`
}

type StorageConfig struct {
	Enabled   bool   `env:"S3_ENABLED" env-default:"false"`
	Region    string `env:"S3_REGION" env-default:"eu-west-1"`
	Bucket    string `env:"S3_BUCKET" env-default:""`
	Endpoint  string `env:"S3_ENDPOINT" env-default:"" env-description:"custom endpoint for S3-compatible storage"`
	AccessKey string `env:"S3_ACCESS_KEY" env-default:""`
	SecretKey string `env:"S3_SECRET_KEY" env-default:""`
}

type SMTPConfig struct {
	Host string `env:"SMTP_HOST" env-required:"true"`
	Port int    `env:"SMTP_PORT" env-required:"true"`
	From string `env:"SMTP_FROM" env-required:"true"`
	Pass string `env:"SMTP_PASS" env-required:"true"`
}

type EmailConfig struct {
	Enabled   bool `env:"EMAIL_ENABLED" env-default:"false"`
	Templates EmailTemplates
}

type EmailTemplates struct {
	PaymentConfirmation string `env:"EMAIL_TEMPLATE_PAYMENT_CONFIRMATION" env-default:"payment_confirmation.html"`
}

type Cache struct {
	Type  string `env:"REDIS_TYPE" env-required:"true" env-description:"specifies provider, one of redis/redisCluster"`
	Redis struct {
		Address  string `env:"REDIS_ADDR" env-default:"" env-description:"redis host:port single instance"`
		Password string `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize int    `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
	RedisCluster struct {
		Addresses []string `env:"REDIS_CLUSTER_ADDRS" env-default:"" env-description:"redis cluster nodes"`
		Password  string   `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize  int      `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
	ContentTTL time.Duration `env:"CACHE_CONTENT_TTL" env-default:"60s" env-description:"ttl for cached public content lists"`
}

func MustLoad() *Config {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}

	return &cfg
}
