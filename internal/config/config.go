package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env             string        `mapstructure:"ENV"`
	Port            string        `mapstructure:"PORT"`
	DatabaseURL     string        `mapstructure:"DATABASE_URL"`
	AdminKey        string        `mapstructure:"ADMIN_KEY"`
	CORSAllowed     string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RequestTimeout  time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	MaxUploadSizeMB int64         `mapstructure:"MAX_UPLOAD_MB"`

	AIProvider  string `mapstructure:"AI_PROVIDER"` // mock | openai
	AIBaseURL   string `mapstructure:"AI_BASE_URL"`
	AIModel     string `mapstructure:"AI_MODEL"`
	AIAPIKey    string `mapstructure:"AI_API_KEY"`
	AIMaxTokens int    `mapstructure:"AI_MAX_TOKENS"`

	SpeechProvider string `mapstructure:"SPEECH_PROVIDER"` // mock | whisper
	SpeechBaseURL  string `mapstructure:"SPEECH_BASE_URL"`
	SpeechAPIKey   string `mapstructure:"SPEECH_API_KEY"`
	SpeechModel    string `mapstructure:"SPEECH_MODEL"`

	SMTPHost string `mapstructure:"SMTP_HOST"`
	SMTPPort int    `mapstructure:"SMTP_PORT"`
	SMTPUser string `mapstructure:"SMTP_USER"`
	SMTPPass string `mapstructure:"SMTP_PASS"`
	SMTPFrom string `mapstructure:"SMTP_FROM"`
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	_ = v.ReadInConfig()

	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "8080")
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("MAX_UPLOAD_MB", 20)
	v.SetDefault("AI_PROVIDER", "mock")
	v.SetDefault("AI_MODEL", "gpt-4-turbo")
	v.SetDefault("AI_MAX_TOKENS", 1000)
	v.SetDefault("SPEECH_PROVIDER", "mock")
	v.SetDefault("SMTP_PORT", 587)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
