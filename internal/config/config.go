package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type CheckoutConfig struct {
	Env        string `yaml:"env"`
	HTTPServer `yaml:"http_server"`
	CheckoutDB `yaml:"checkout_db"`
	Redis      `yaml:"redis"`
	Gateway    `yaml:"gateway"`
	Auth       `yaml:"auth"`
	Media      `yaml:"media"`
	Mailer     `yaml:"mailer"`
	Kafka      `yaml:"kafka"`
	LogConfig  `yaml:"log_config"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type CheckoutDB struct {
	Dsn string `yaml:"dsn"`
}

type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"`
	TrackTTL int    `yaml:"track_ttl_seconds" env-default:"300"`
}

type Gateway struct {
	BaseURL     string `yaml:"base_url"`
	APIKey      string `yaml:"api_key" env:"GATEWAY_API_KEY"`
	SecretKey   string `yaml:"secret_key" env:"GATEWAY_SECRET_KEY"`
	CallbackURL string `yaml:"callback_url"`
	SuccessURL  string `yaml:"success_url"`
	FailureURL  string `yaml:"failure_url"`
	Currency    string `yaml:"currency" env-default:"TRY"`
}

type Auth struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"`
}

type Media struct {
	BaseURL    string `yaml:"base_url"`
	Dir        string `yaml:"dir"`
	SignSecret string `yaml:"sign_secret" env:"MEDIA_SIGN_SECRET"`
	URLTTL     int    `yaml:"url_ttl_minutes" env-default:"15"`
}

type Mailer struct {
	APIURL        string `yaml:"api_url"`
	APIKey        string `yaml:"api_key" env:"MAILER_API_KEY"`
	From          string `yaml:"from"`
	OperatorEmail string `yaml:"operator_email"`
}

type Kafka struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"purchase-events"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

func MustLoad() *CheckoutConfig {

	// Processing env config variable and file
	configPath := os.Getenv("CHECKOUT_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("CHECKOUT_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg CheckoutConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
