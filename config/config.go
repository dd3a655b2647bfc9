package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer    HttpServerConfig    `envconfig:"http_server"`
	Database      DatabaseConfig      `envconfig:"database"`
	Redis         RedisConfig         `envconfig:"redis"`
	MessageStream MessageStreamConfig `envconfig:"message_stream"`
	HttpClient    HttpClientConfig    `envconfig:"http_client"`
	UserService   UserServiceConfig   `envconfig:"user_service"`
	PushGateway   PushGatewayConfig   `envconfig:"push_gateway"`
	Booking       BookingConfig       `envconfig:"booking"`
}

type HttpServerConfig struct {
	Port string `envconfig:"port" default:"3000"`
}

type DatabaseConfig struct {
	Host         string `envconfig:"host" default:"localhost"`
	Port         string `envconfig:"port" default:"5432"`
	User         string `envconfig:"user" default:"postgres"`
	Password     string `envconfig:"password" default:"postgres"`
	Name         string `envconfig:"name" default:"reservation"`
	SSLMode      string `envconfig:"ssl_mode" default:"disable"`
	MaxOpenConns int    `envconfig:"max_open_conns" default:"25"`
	MaxIdleConns int    `envconfig:"max_idle_conns" default:"5"`
}

type RedisConfig struct {
	Host     string `envconfig:"host" default:"localhost"`
	Port     string `envconfig:"port" default:"6379"`
	Password string `envconfig:"password" default:""`
	DB       int    `envconfig:"db" default:"0"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"host" default:"localhost"`
	Port     string `envconfig:"port" default:"5672"`
	User     string `envconfig:"user" default:"guest"`
	Password string `envconfig:"password" default:"guest"`
}

type HttpClientConfig struct {
	Type                string  `envconfig:"type" default:"consecutive"`
	Timeout             int     `envconfig:"timeout" default:"5"`
	ConsecutiveFailures int64   `envconfig:"consecutive_failures" default:"5"`
	ErrorRate           float64 `envconfig:"error_rate" default:"0.65"`
	MinSamples          int64   `envconfig:"min_samples" default:"100"`
}

type UserServiceConfig struct {
	Host string `envconfig:"host" default:"localhost"`
	Port string `envconfig:"port" default:"8081"`
}

type PushGatewayConfig struct {
	Host string `envconfig:"host" default:"localhost"`
	Port string `envconfig:"port" default:"8082"`
}

type BookingConfig struct {
	// RequestTTLHours is how long a REQUESTED booking may stay unanswered
	// before it is auto rejected.
	RequestTTLHours  int    `envconfig:"request_ttl_hours" default:"72"`
	Currency         string `envconfig:"currency" default:"FCFA"`
	CalendarCacheTTL int    `envconfig:"calendar_cache_ttl_minutes" default:"10"`
}

func InitConfig() *Config {
	var cfg Config
	if err := envconfig.Process("reservation", &cfg); err != nil {
		log.Fatal(err)
	}
	return &cfg
}
