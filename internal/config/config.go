package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrInvalidConfig               = errors.New("invalid configuration")
)

// Progress storage drivers.
const (
	DriverJSON     = "json"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string     `mapstructure:"env"` // current application environment (local, dev, production etc)
	TelegramAPIToken string     `mapstructure:"-"`   // Telegram API token loaded from environment
	Vocabulary       Vocabulary `mapstructure:"vocabulary"`
	Progress         Progress   `mapstructure:"progress"`
	DB               DB         `mapstructure:"database"`
	Daily            Daily      `mapstructure:"daily"`
	Broadcast        Broadcast  `mapstructure:"broadcast"`
}

// Vocabulary describes where the word list lives and how its columns are named.
type Vocabulary struct {
	Path              string `mapstructure:"path"`               // .csv or .xlsx file
	TermColumn        string `mapstructure:"term_column"`        // header of the foreign-language column
	TranslationColumn string `mapstructure:"translation_column"` // header of the translation column
	Sheet             string `mapstructure:"sheet"`              // xlsx sheet, first one when empty
}

// Progress selects the review history backend.
type Progress struct {
	Driver string `mapstructure:"driver"` // json, postgres or sqlite
	Path   string `mapstructure:"path"`   // file path for json and sqlite drivers
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Daily configures the review list size.
type Daily struct {
	Limit int `mapstructure:"limit"`
}

// Broadcast configures the scheduled daily push.
type Broadcast struct {
	Cron     string         `mapstructure:"cron"`
	Timezone string         `mapstructure:"timezone"`
	ChatIDs  []int64        `mapstructure:"-"`
	Location *time.Location `mapstructure:"-"`
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("vocabulary.path", "italian_words_clean.csv")
	v.SetDefault("vocabulary.term_column", "italian_word")
	v.SetDefault("vocabulary.translation_column", "translation")
	v.SetDefault("vocabulary.sheet", "")
	v.SetDefault("progress.driver", DriverJSON)
	v.SetDefault("progress.path", "progress.json")
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")
	v.SetDefault("daily.limit", 5)
	v.SetDefault("broadcast.cron", "0 9 * * *")
	v.SetDefault("broadcast.timezone", "Asia/Jerusalem")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	_ = v.BindEnv("telegram_api_token", "TELEGRAM_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("vocabulary.path", "VOCABULARY_PATH")
	_ = v.BindEnv("progress.driver", "PROGRESS_DRIVER")
	_ = v.BindEnv("progress.path", "PROGRESS_PATH")
	_ = v.BindEnv("broadcast.timezone", "TIMEZONE")
	_ = v.BindEnv("broadcast.chat_ids", "YOUR_CHAT_ID")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}
	cfg.DB.URL = v.GetString("database_url")

	chatIDs, err := parseChatIDs(v.GetStringSlice("broadcast.chat_ids"))
	if err != nil {
		return nil, err
	}
	cfg.Broadcast.ChatIDs = chatIDs

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Progress.Driver {
	case DriverJSON, DriverSQLite:
		if c.Progress.Path == "" {
			return fmt.Errorf("%w: progress.path is empty", ErrInvalidConfig)
		}
	case DriverPostgres:
		if c.DB.URL == "" {
			return ErrMissingEnvironmentVariables
		}
	default:
		return fmt.Errorf("%w: unknown progress driver %q", ErrInvalidConfig, c.Progress.Driver)
	}

	if c.Daily.Limit <= 0 {
		return fmt.Errorf("%w: daily.limit must be positive", ErrInvalidConfig)
	}

	loc, err := time.LoadLocation(c.Broadcast.Timezone)
	if err != nil {
		return fmt.Errorf("%w: timezone %q: %v", ErrInvalidConfig, c.Broadcast.Timezone, err)
	}
	c.Broadcast.Location = loc

	return nil
}

// parseChatIDs accepts both a YAML list and a comma separated env value.
func parseChatIDs(raw []string) ([]int64, error) {
	var ids []int64
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: chat id %q", ErrInvalidConfig, part)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}
