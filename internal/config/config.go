// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Database struct {
		// URL is a postgres connection string. When empty the service
		// falls back to a local sqlite file at FallbackPath.
		URL          string `mapstructure:"url"`
		FallbackPath string `mapstructure:"fallback_path"`
	} `mapstructure:"database"`
	AI struct {
		// APIKey is only ever supplied through config or the
		// GROQ_API_KEY environment variable, never hard-coded.
		APIKey  string `mapstructure:"api_key"`
		Model   string `mapstructure:"model"`
		BaseURL string `mapstructure:"base_url"`
	} `mapstructure:"ai"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("ai.api_key", "GROQ_API_KEY")
	viper.BindEnv("ai.model", "GROQ_MODEL")
	viper.BindEnv("server.port", "APP_SERVER_PORT")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using defaults and environment variables.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	if Cfg.Server.Port == "" {
		Cfg.Server.Port = ":8080"
	}
	if Cfg.Database.FallbackPath == "" {
		Cfg.Database.FallbackPath = "workouts.db"
	}
	if Cfg.AI.Model == "" {
		Cfg.AI.Model = "llama-3.3-70b-versatile"
	}
	if Cfg.AI.BaseURL == "" {
		Cfg.AI.BaseURL = "https://api.groq.com/openai/v1/chat/completions"
	}
	if Cfg.AI.APIKey == "" {
		log.Println("Warning: AI API key is not set; generation endpoints will fail upstream.")
	}
	if Cfg.Database.URL == "" {
		log.Printf("Database URL not set, will use local sqlite file %q", Cfg.Database.FallbackPath)
	}
	if len(Cfg.CORS.AllowedOrigins) == 0 {
		Cfg.CORS.AllowedOrigins = []string{"*"}
	}
	if len(Cfg.CORS.AllowedMethods) == 0 {
		Cfg.CORS.AllowedMethods = []string{"GET", "POST", "OPTIONS"}
	}
	if len(Cfg.CORS.AllowedHeaders) == 0 {
		Cfg.CORS.AllowedHeaders = []string{"Accept", "Content-Type"}
	}

	log.Println("Config loaded successfully")
	return nil
}
