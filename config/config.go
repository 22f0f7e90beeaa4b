package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"

	"github.com/martinbaumann-sky/BaumannCo/models"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	HostURL           string `mapstructure:"HOST_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Google Calendar OAuth configuration.
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURI  string `mapstructure:"GOOGLE_REDIRECT_URI"`
	GoogleCalendarID   string `mapstructure:"GOOGLE_CALENDAR_ID"`
	GoogleTimezone     string `mapstructure:"GOOGLE_TIMEZONE"`
	GoogleTokenPath    string `mapstructure:"GOOGLE_TOKEN_PATH"`

	// Booking policy.
	SlotDurationMinutes int    `mapstructure:"SLOT_DURATION_MINUTES"`
	SlotLookaheadDays   int    `mapstructure:"SLOT_LOOKAHEAD_DAYS"`
	BusinessSlots       string `mapstructure:"BUSINESS_SLOTS"`

	// Optional Redis availability cache.
	RedisAddr               string `mapstructure:"REDIS_ADDR"`
	RedisPassword           string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB            int    `mapstructure:"REDIS_CACHE_DB"`
	AvailabilityCacheTTLSec int    `mapstructure:"AVAILABILITY_CACHE_TTL_SEC"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "4000")
	viper.SetDefault("HOST_URL", "")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("GOOGLE_REDIRECT_URI", "")
	viper.SetDefault("GOOGLE_CALENDAR_ID", "primary")
	viper.SetDefault("GOOGLE_TIMEZONE", "America/Santiago")
	viper.SetDefault("GOOGLE_TOKEN_PATH", "data/google-tokens.json")
	viper.SetDefault("SLOT_DURATION_MINUTES", 45)
	viper.SetDefault("SLOT_LOOKAHEAD_DAYS", 12)
	viper.SetDefault("BUSINESS_SLOTS", "09:00,11:00,14:00,16:00")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("AVAILABILITY_CACHE_TTL_SEC", 60)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if AppConfig.HostURL == "" {
		AppConfig.HostURL = "http://localhost:" + AppConfig.AppPort
	}
	if AppConfig.GoogleRedirectURI == "" {
		AppConfig.GoogleRedirectURI = AppConfig.HostURL + "/api/google/oauth2callback"
	}
}

// Validate checks the configuration surface the process cannot serve
// without. Any failure here is fatal at startup, never at request time.
func Validate() error {
	if AppConfig.GoogleClientID == "" || AppConfig.GoogleClientSecret == "" {
		return fmt.Errorf("GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set")
	}
	if _, err := Schedule(); err != nil {
		return err
	}
	return nil
}

// Schedule resolves the immutable business schedule: open-weekday policy,
// slot templates, slot duration and lookahead window.
func Schedule() (models.BusinessSchedule, error) {
	loc, err := time.LoadLocation(AppConfig.GoogleTimezone)
	if err != nil {
		return models.BusinessSchedule{}, fmt.Errorf("invalid GOOGLE_TIMEZONE %q: %w", AppConfig.GoogleTimezone, err)
	}
	templates, err := models.ParseSlotTemplates(AppConfig.BusinessSlots)
	if err != nil {
		return models.BusinessSchedule{}, fmt.Errorf("invalid BUSINESS_SLOTS: %w", err)
	}
	if AppConfig.SlotDurationMinutes <= 0 {
		return models.BusinessSchedule{}, fmt.Errorf("SLOT_DURATION_MINUTES must be positive")
	}
	if AppConfig.SlotLookaheadDays <= 0 {
		return models.BusinessSchedule{}, fmt.Errorf("SLOT_LOOKAHEAD_DAYS must be positive")
	}
	return models.BusinessSchedule{
		Location:        loc,
		Templates:       templates,
		DurationMinutes: AppConfig.SlotDurationMinutes,
		LookaheadDays:   AppConfig.SlotLookaheadDays,
	}, nil
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
