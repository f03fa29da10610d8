package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	DB         `yaml:"db"`
	HTTPServer `yaml:"http_server"`
	Auth       `yaml:"auth"`
}

type DB struct {
	Path string `yaml:"path" env:"DB_PATH" env-default:"zikrhub.db"`
}

type HTTPServer struct {
	Address      string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
}

// Auth собирает все настройки ядра аутентификации в один объект,
// который один раз создается при старте процесса и передается по ссылке.
// Никаких package-level секретов.
type Auth struct {
	JWTSecret        string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	TokenTTL         time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"168h"`
	BcryptCost       int           `yaml:"bcrypt_cost" env:"BCRYPT_COST" env-default:"10"`
	LockoutThreshold int           `yaml:"lockout_threshold" env:"LOCKOUT_THRESHOLD" env-default:"5"`
	LockoutDuration  time.Duration `yaml:"lockout_duration" env:"LOCKOUT_DURATION" env-default:"15m"`
	RateLimit        int           `yaml:"rate_limit" env:"AUTH_RATE_LIMIT" env-default:"10"`
	RateWindow       time.Duration `yaml:"rate_window" env:"AUTH_RATE_WINDOW" env-default:"1m"`
}

// MustLoad загружает конфигурацию или паникует.
// Если путь пустой, конфигурация читается только из переменных окружения.
func MustLoad(configPath string) *Config {
	config, err := load(configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	return config
}

func load(path string) (*Config, error) {
	var config Config

	if path == "" {
		if err := cleanenv.ReadEnv(&config); err != nil {
			return nil, err
		}
		return &config, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	if err := cleanenv.ReadConfig(path, &config); err != nil {
		return nil, err
	}

	return &config, nil
}
