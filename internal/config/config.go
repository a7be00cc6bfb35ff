package config

import (
	"errors"
	"fmt"
	"net"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppPort  string `envconfig:"APP_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	MySQLHost string `envconfig:"MYSQL_HOST" default:"mysql"`
	MySQLPort string `envconfig:"MYSQL_PORT" default:"3306"`
	MySQLDB   string `envconfig:"MYSQL_DB" default:"warehouse"`
	MySQLUser string `envconfig:"MYSQL_USER" default:"warehouse"`
	MySQLPass string `envconfig:"MYSQL_PASS" default:"warehouse"`

	RedisAddr string `envconfig:"REDIS_ADDR" default:"redis:6379"`
	RedisDB   int    `envconfig:"REDIS_DB" default:"0"`

	IdempTTLSecs int `envconfig:"IDEMPOTENCY_TTL_SECONDS" default:"300"`
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
