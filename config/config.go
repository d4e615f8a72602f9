package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Schedule ScheduleConfig
	SMTP     SMTPConfig
	Reminder ReminderConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// ScheduleConfig tunes the availability engine.
type ScheduleConfig struct {
	// SlotIntervalMinutes is the candidate start-time grid step.
	SlotIntervalMinutes int
	// Timezone is the IANA name of the salon's local timezone; calendar
	// dates are interpreted there when deriving the day of week.
	Timezone string
}

type SMTPConfig struct {
	Host    string
	Port    string
	From    string
	Enabled bool
}

type ReminderConfig struct {
	// CronSpec is when the daily reminder job for next-day appointments runs.
	CronSpec string
	Enabled  bool
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	slotInterval := viper.GetInt("SCHEDULE_SLOT_INTERVAL_MINUTES")
	timezone := viper.GetString("SCHEDULE_TIMEZONE")
	if timezone == "" {
		timezone = "UTC"
	}

	reminderCron := viper.GetString("REMINDER_CRON")
	if reminderCron == "" {
		reminderCron = "0 18 * * *"
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Schedule: ScheduleConfig{
			SlotIntervalMinutes: slotInterval,
			Timezone:            timezone,
		},
		SMTP: SMTPConfig{
			Host:    viper.GetString("SMTP_HOST"),
			Port:    viper.GetString("SMTP_PORT"),
			From:    viper.GetString("SMTP_FROM"),
			Enabled: viper.GetBool("SMTP_ENABLED"),
		},
		Reminder: ReminderConfig{
			CronSpec: reminderCron,
			Enabled:  viper.GetBool("REMINDER_ENABLED"),
		},
	}

	return config, nil
}
