package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server    Server
	Interview Interview
	Oracle    Oracle
}

type Server struct {
	Port string
}

// Interview holds the tunables of the session state machine.
type Interview struct {
	PassThreshold        int
	MaxAttempts          int
	DefaultQuestionCount int
	SessionTTL           time.Duration
	SweepInterval        time.Duration
}

// Oracle holds the remote scoring/generation service settings. An empty
// APIKey disables the oracle entirely; the evaluator and the generator then
// run on their local fallbacks.
type Oracle struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("ORACLE_TIMEOUT_SECONDS", 10)
	viper.SetDefault("PASS_THRESHOLD", 60)
	viper.SetDefault("MAX_ATTEMPTS_PER_QUESTION", 3)
	viper.SetDefault("DEFAULT_QUESTION_COUNT", 10)
	viper.SetDefault("SESSION_TTL_HOURS", 24)
	viper.SetDefault("SWEEP_INTERVAL_MINUTES", 0)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")

	config.Interview.PassThreshold = viper.GetInt("PASS_THRESHOLD")
	config.Interview.MaxAttempts = viper.GetInt("MAX_ATTEMPTS_PER_QUESTION")
	config.Interview.DefaultQuestionCount = viper.GetInt("DEFAULT_QUESTION_COUNT")
	config.Interview.SessionTTL = time.Duration(viper.GetInt("SESSION_TTL_HOURS")) * time.Hour
	config.Interview.SweepInterval = time.Duration(viper.GetInt("SWEEP_INTERVAL_MINUTES")) * time.Minute

	config.Oracle.APIKey = viper.GetString("GEMINI_API_KEY")
	config.Oracle.Model = viper.GetString("GEMINI_MODEL")
	config.Oracle.Timeout = time.Duration(viper.GetInt("ORACLE_TIMEOUT_SECONDS")) * time.Second

	log.Info().
		Str("port", config.Server.Port).
		Bool("oracle_enabled", config.Oracle.APIKey != "").
		Msg("Config loaded")
	return &config, nil
}
