package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port            string        `yaml:"port" env:"SERVER_PORT" env-default:"8080"`
	AllowedOrigins  []string      `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:5173"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type JWTConfig struct {
	SecretKey       string        `yaml:"secret_key" env:"JWT_SECRET_KEY" env-default:"gavioes-dev-secret-change-me"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl" env:"JWT_ACCESS_TTL" env-default:"24h"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" env:"JWT_REFRESH_TTL" env-default:"720h"`
}

type AuthConfig struct {
	MaxLoginAttempts int           `yaml:"max_login_attempts" env:"AUTH_MAX_LOGIN_ATTEMPTS" env-default:"5"`
	LockoutDuration  time.Duration `yaml:"lockout_duration" env:"AUTH_LOCKOUT_DURATION" env-default:"15m"`
}

// RedisConfig is optional: with an empty address the login lockout counters live in memory.
type RedisConfig struct {
	Address  string `yaml:"address" env:"REDIS_ADDRESS"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type LogConfig struct {
	Level       string   `yaml:"level" env:"LOG_LEVEL" env-default:"debug"`
	OutputPaths []string `yaml:"output_paths" env:"LOG_OUTPUT_PATHS" env-separator:"," env-default:"stdout"`
}

type SeedConfig struct {
	Enabled       bool   `yaml:"enabled" env:"SEED_ENABLED" env-default:"true"`
	FixturesPath  string `yaml:"fixtures_path" env:"SEED_FIXTURES_PATH"`
	EquipmentXLSX string `yaml:"equipment_xlsx" env:"SEED_EQUIPMENT_XLSX"`
}

type MediaConfig struct {
	PhotoPlaceholderURL string `yaml:"photo_placeholder_url" env:"MEDIA_PHOTO_PLACEHOLDER_URL" env-default:"https://images.pexels.com/photos/416778/pexels-photo-416778.jpeg"`
	VideoBaseURL        string `yaml:"video_base_url" env:"MEDIA_VIDEO_BASE_URL" env-default:"/media/videos"`
}

type Config struct {
	Server ServerConfig `yaml:"server"`
	JWT    JWTConfig    `yaml:"jwt"`
	Auth   AuthConfig   `yaml:"auth"`
	Redis  RedisConfig  `yaml:"redis"`
	Log    LogConfig    `yaml:"log"`
	Seed   SeedConfig   `yaml:"seed"`
	Media  MediaConfig  `yaml:"media"`
}

// New loads .env (when present) and then reads the configuration from the YAML
// file named by CONFIG_PATH, or from the environment alone.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Aviso: arquivo .env não encontrado, usando apenas variáveis de ambiente.")
	}

	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("cannot read config %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("cannot read config from env: %w", err)
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := New()
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}
