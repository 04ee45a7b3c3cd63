package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

// Config is read by the serve command.
type Config struct {
	Env      string `env:"ENV" env-required:"true"`
	Postgres PostgresConfig
	HTTP     HTTPConfig
	JWT      JWTConfig
}

// DigestConfig is read by the digest command.
type DigestConfig struct {
	Env      string `env:"ENV" env-required:"true"`
	Postgres PostgresConfig
	Mail     MailConfig
	Digest   DigestJobConfig
}

type PostgresConfig struct {
	Host           string        `env:"POSTGRES_HOST" env-required:"true"`
	Port           int           `env:"POSTGRES_PORT" env-default:"5432"`
	Username       string        `env:"POSTGRES_USERNAME" env-required:"true"`
	Password       string        `env:"POSTGRES_PASSWORD" env-required:"true"`
	Database       string        `env:"POSTGRES_DATABASE" env-required:"true"`
	SSLMode        string        `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	ConnectTimeout time.Duration `env:"POSTGRES_CONNECT_TIMEOUT" env-default:"10s"`
	PingTimeout    time.Duration `env:"POSTGRES_PING_TIMEOUT" env-default:"10s"`
	// MaxConns bounds the pool shared by every request handler.
	MaxConns int32 `env:"POSTGRES_MAX_CONNS" env-default:"10"`
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            string        `env:"HTTP_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type JWTConfig struct {
	Issuer     string `env:"JWT_ISSUER" env-default:"tarefasapp"`
	SigningKey string `env:"JWT_SIGNING_KEY" env-required:"true"`
}

type MailConfig struct {
	Host     string `env:"MAIL_HOST" env-default:"smtp.gmail.com"`
	Port     int    `env:"MAIL_PORT" env-default:"587"`
	Username string `env:"MAIL_USERNAME" env-required:"true"`
	Password string `env:"MAIL_PASSWORD" env-required:"true"`
	From     string `env:"MAIL_FROM" env-required:"true"`
	FromName string `env:"MAIL_FROM_NAME" env-default:"TarefasApp"`
}

type DigestJobConfig struct {
	Recipient  string        `env:"DIGEST_RECIPIENT" env-required:"true"`
	Schedule   string        `env:"DIGEST_SCHEDULE" env-default:"30 8 * * *"`
	Timeout    time.Duration `env:"DIGEST_TIMEOUT" env-default:"1m"`
	EscapeHTML bool          `env:"DIGEST_ESCAPE_HTML" env-default:"false"`
	AppURL     string        `env:"APP_URL" env-default:"http://localhost:3000"`
}
