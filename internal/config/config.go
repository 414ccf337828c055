package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken     string
	AdminIDs     []int64
	ReceiverID   int64
	Timezone     string
	ReminderCron string
	Database     DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	adminIDs, err := parseIDList(os.Getenv("ADMIN_TELEGRAM_IDS"))
	if err != nil {
		return nil, fmt.Errorf("invalid ADMIN_TELEGRAM_IDS: %w", err)
	}

	receiverID, err := parseOptionalID(os.Getenv("REPORT_RECEIVER_ID"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_RECEIVER_ID: %w", err)
	}

	cfg := &Config{
		BotToken:     os.Getenv("BOT_TOKEN"),
		AdminIDs:     adminIDs,
		ReceiverID:   receiverID,
		Timezone:     getEnv("TIMEZONE", "Europe/Amsterdam"),
		ReminderCron: getEnv("REMINDER_CRON", "0 20 * * 0"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "weeklyreport"),
			User:     getEnv("DB_USER", "weeklyreport"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// Receivers returns the deduplicated set of report recipient ids:
// the admin list plus the fallback receiver, if configured
func (c *Config) Receivers() []int64 {
	seen := make(map[int64]bool)
	var out []int64

	for _, id := range c.AdminIDs {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	if c.ReceiverID > 0 && !seen[c.ReceiverID] {
		out = append(out, c.ReceiverID)
	}

	return out
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func parseIDList(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("not a telegram id: %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseOptionalID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a telegram id: %q", raw)
	}
	return id, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
