package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv       string
	LogLevel     string
	Server       Server
	Database     Database
	Auth         Auth
	Exam         Exam
	GeminiApiKey string
}

type Server struct {
	Port string
}

type Database struct {
	Driver   string // postgres or memory
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type Auth struct {
	JWTSecret string
}

type Exam struct {
	ConfigPath     string
	SnapshotPolicy string
	SnapshotSeed   uint64
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("SNAPSHOT_POLICY", "ordered")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.AppEnv = viper.GetString("APP_ENV")
	config.LogLevel = viper.GetString("LOG_LEVEL")
	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Driver = viper.GetString("DATABASE_DRIVER")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")
	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")
	config.Exam.ConfigPath = viper.GetString("EXAM_CONFIG_PATH")
	config.Exam.SnapshotPolicy = viper.GetString("SNAPSHOT_POLICY")
	config.Exam.SnapshotSeed = viper.GetUint64("SNAPSHOT_SEED")

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")

	log.Info().
		Str("env", config.AppEnv).
		Str("port", config.Server.Port).
		Str("dbDriver", config.Database.Driver).
		Str("dbHost", config.Database.Host).
		Str("examConfig", config.Exam.ConfigPath).
		Str("snapshotPolicy", config.Exam.SnapshotPolicy).
		Bool("geminiEnabled", config.GeminiApiKey != "").
		Msg("Config loaded")
	return &config, nil
}
