package config

import (
	"errors"
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"io/fs"
	"log"
	"os"
	"sync"
	"time"
)

type Config struct {
	Env      string `yaml:"env" env:"ENV" env-default:"local"`
	Telegram struct {
		ApiKey  string `yaml:"api_key" env:"TELEGRAM_API_KEY" env-default:""`
		AdminId int64  `yaml:"admin_id" env:"TELEGRAM_ADMIN_ID" env-default:"0"`
		BotName string `yaml:"bot_name" env:"TELEGRAM_BOT_NAME" env-default:"StaticaBot"`
		Enabled bool   `yaml:"enabled" env:"TELEGRAM_ENABLED" env-default:"false"`
	} `yaml:"telegram"`
	Generation struct {
		Token       string        `yaml:"token" env:"HF_TOKEN" env-default:""`
		BaseURL     string        `yaml:"base_url" env:"HF_BASE_URL" env-default:"https://router.huggingface.co/v1"`
		Model       string        `yaml:"model" env:"HF_MODEL" env-default:"HuggingFaceH4/zephyr-7b-beta"`
		MaxTokens   int           `yaml:"max_tokens" env-default:"300"`
		Temperature float32       `yaml:"temperature" env-default:"0.7"`
		Timeout     time.Duration `yaml:"timeout" env:"HF_TIMEOUT" env-default:"30s"`
	} `yaml:"generation"`
	Mail struct {
		Provider     string        `yaml:"provider" env:"MAIL_PROVIDER" env-default:"smtp"`
		Server       string        `yaml:"server" env:"SMTP_SERVER" env-default:"smtp.gmail.com"`
		Port         int           `yaml:"port" env:"SMTP_PORT" env-default:"587"`
		Username     string        `yaml:"username" env:"SMTP_USERNAME" env-default:""`
		Password     string        `yaml:"password" env:"SMTP_PASSWORD" env-default:""`
		FromEmail    string        `yaml:"from_email" env:"FROM_EMAIL" env-default:"noreply@statica.in"`
		FromName     string        `yaml:"from_name" env:"FROM_NAME" env-default:"Statica Support"`
		Timeout      time.Duration `yaml:"timeout" env:"SMTP_TIMEOUT" env-default:"15s"`
		AwsRegion    string        `yaml:"aws_region" env:"AWS_REGION" env-default:""`
		EnabledTypes []string      `yaml:"enabled_types" env:"EMAIL_TYPES" env-separator:","`
	} `yaml:"mail"`
	Listen struct {
		BindIP      string   `yaml:"bind_ip" env:"BIND_IP" env-default:"0.0.0.0"`
		Port        string   `yaml:"port" env:"PORT" env-default:"8000"`
		Timeout     int      `yaml:"timeout" env-default:"60"`
		CorsOrigins []string `yaml:"cors_origins" env:"CORS_ORIGINS" env-separator:"," env-default:"*"`
	} `yaml:"listen"`
}

var instance *Config
var once sync.Once

// MustLoad reads the yaml file at path when it exists and the process environment otherwise.
// A .env file in the working directory is merged into the environment first.
func MustLoad(path string) *Config {
	once.Do(func() {
		conf, err := Load(path)
		if err != nil {
			log.Fatal(err)
		}
		instance = conf
	})
	return instance
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	conf := &Config{}

	var err error
	if _, statErr := os.Stat(path); path != "" && statErr == nil {
		err = cleanenv.ReadConfig(path, conf)
	} else if statErr != nil && !errors.Is(statErr, fs.ErrNotExist) {
		return nil, fmt.Errorf("config file %s: %w", path, statErr)
	} else {
		err = cleanenv.ReadEnv(conf)
	}
	if err != nil {
		desc, _ := cleanenv.GetDescription(conf, nil)
		return nil, fmt.Errorf("%s; %s", err, desc)
	}

	return conf, nil
}

// GenerationEnabled reports whether a remote text-generation token is configured.
func (c *Config) GenerationEnabled() bool {
	return c.Generation.Token != ""
}
