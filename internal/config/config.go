// Package config provides types for handling configuration parameters.

package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// API defines variables for a subset of configuration parameters.
type API struct {
	BaseURL            string        `env:"API_BASE_URL" env-default:"http://localhost:8080"`
	Username           string        `env:"API_USERNAME" env-default:"admin"`
	Password           string        `env:"API_PASSWORD" env-default:"admin"`
	InsecureSkipVerify bool          `env:"API_INSECURE_SKIP_VERIFY" env-default:"true"`
	Timeout            time.Duration `env:"API_TIMEOUT" env-default:"30s"`
}

// Session defines variables for a subset of configuration parameters.
type Session struct {
	Genero  string `env:"SESSION_GENERO" env-default:"male"`
	Dataset string `env:"SESSION_DATASET" env-default:"common_voice"`
}

// Run defines variables for a subset of configuration parameters.
type Run struct {
	Strict  bool   `env:"CHECK_STRICT" env-default:"false"`
	Phrases bool   `env:"CHECK_PHRASES" env-default:"false"`
	Summary string `env:"CHECK_SUMMARY" env-default:"table"`
}

// Server defines variables for a subset of configuration parameters.
type Server struct {
	ServerAddress string        `env:"SERVER_ADDRESS" env-default:":8080"`
	IdleTimeout   time.Duration `env:"IDLE_TIMEOUT" env-default:"120s"`
	ReadTimeout   time.Duration `env:"READ_TIMEOUT" env-default:"120s"`
	WriteTimeout  time.Duration `env:"WRITE_TIMEOUT" env-default:"120s"`
}

// AMQP defines variables for a subset of configuration parameters.
type AMQP struct {
	Addr               string `env:"AMQP_ADDR"`
	ReportExchangeName string `env:"AMQP_REPORT_EXCHANGE_NAME" env-default:"smoke_reports"`
}

// Logger defines variables for a subset of configuration parameters.
type Logger struct {
	Level int `env:"LOG_LEVEL" env-default:"1"`
}

// Config defines configuration parameters for an app.
type Config struct {
	API     API
	Session Session
	Run     Run
	Server  Server
	AMQP    AMQP
	Logger  Logger
}

// NewConfig initializes a new Config instance and parses environment variables.
func NewConfig() *Config {
	var cfg Config
	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		panic(err)
	}
	return &cfg
}
