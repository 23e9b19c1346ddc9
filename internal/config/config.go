package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env     string        `yaml:"env" env:"ENV" env-default:"local"`
	DSN     string        `yaml:"dsn" env:"DSN" env-required:"true"`
	HTTP    HTTPConfig    `yaml:"http"`
	Admin   AdminConfig   `yaml:"admin"`
	Storage StorageConfig `yaml:"storage"`
}

type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// AdminConfig drives the admin-token check on mutating routes.
// The browser-side "admin mode" flag is presentation only.
type AdminConfig struct {
	Password string        `yaml:"password" env:"ADMIN_PASSWORD" env-required:"true"`
	Secret   string        `yaml:"secret" env:"ADMIN_SECRET" env-required:"true"`
	TokenTTL time.Duration `yaml:"token_ttl" env:"ADMIN_TOKEN_TTL" env-default:"12h"`
}

type StorageConfig struct {
	Endpoint   string `yaml:"endpoint" env:"STORAGE_ENDPOINT" env-required:"true"`
	AccessKey  string `yaml:"access_key" env:"STORAGE_ACCESS_KEY" env-required:"true"`
	SecretKey  string `yaml:"secret_key" env:"STORAGE_SECRET_KEY" env-required:"true"`
	Bucket     string `yaml:"bucket" env:"STORAGE_BUCKET" env-default:"images"`
	PublicBase string `yaml:"public_base" env:"STORAGE_PUBLIC_BASE" env-required:"true"`
	UseSSL     bool   `yaml:"use_ssl" env:"STORAGE_USE_SSL" env-default:"false"`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
