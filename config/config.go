package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type ServerConfig struct {
	Port int `toml:"port"`
}

type MailboxConfig struct {
	OwnerName  string `toml:"owner_name"`
	OwnerEmail string `toml:"owner_email"`
	Timezone   string `toml:"timezone"`
}

type GeneratorConfig struct {
	Start           string  `toml:"start"` // ISO date, inclusive
	End             string  `toml:"end"`   // ISO date, inclusive
	OutDir          string  `toml:"out_dir"`
	Quiet           bool    `toml:"quiet"`
	LogEvery        int     `toml:"log_every"` // progress log cadence in days
	ForceRebuild    bool    `toml:"force_rebuild"`
	SkipExistingDay bool    `toml:"skip_existing_day"`
	CateringProb    float64 `toml:"catering_prob"`
}

type FeedConfig struct {
	PageSize int `toml:"page_size"`
}

type Config struct {
	Server    ServerConfig    `toml:"server"`
	Mailbox   MailboxConfig   `toml:"mailbox"`
	Generator GeneratorConfig `toml:"generator"`
	Feed      FeedConfig      `toml:"feed"`
}

// LoadConfig reads the TOML config file, then applies environment overrides.
// A missing file is not an error; defaults plus environment cover the whole
// surface so the generator can run from env vars alone.
func LoadConfig(filepath string) (*Config, error) {
	var config Config

	// Set default values
	config.Server.Port = 3000
	config.Mailbox.OwnerName = "Alex Mercer"
	config.Mailbox.OwnerEmail = "alex.mercer@meridiancap.com.au"
	config.Mailbox.Timezone = "Australia/Melbourne"
	config.Generator.Start = "2023-04-24"
	config.Generator.End = "2025-08-28"
	config.Generator.OutDir = "./data"
	config.Generator.LogEvery = 7
	config.Generator.SkipExistingDay = true
	config.Generator.CateringProb = 0.35
	config.Feed.PageSize = 200

	if _, err := toml.DecodeFile(filepath, &config); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("decode %s: %w", filepath, err)
	}

	config.applyEnv()

	if _, err := config.StartDate(); err != nil {
		return nil, err
	}
	if _, err := config.EndDate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// applyEnv layers the documented environment variables over the file values.
func (c *Config) applyEnv() {
	c.Generator.Start = getEnvString("GEN_START", c.Generator.Start)
	c.Generator.End = getEnvString("GEN_END", c.Generator.End)
	c.Generator.OutDir = getEnvString("GEN_OUTDIR", c.Generator.OutDir)
	c.Generator.Quiet = getEnvBool("QUIET", c.Generator.Quiet)
	c.Generator.LogEvery = getEnvInt("LOG_EVERY", c.Generator.LogEvery)
	c.Generator.ForceRebuild = getEnvBool("FORCE_REBUILD", c.Generator.ForceRebuild)
	c.Generator.SkipExistingDay = getEnvBool("SKIP_EXISTING_DAY", c.Generator.SkipExistingDay)
	c.Generator.CateringProb = getEnvFloat("CATERING_PROB", c.Generator.CateringProb)
	c.Server.Port = getEnvInt("PORT", c.Server.Port)
}

// StartDate parses the configured run start.
func (c *Config) StartDate() (time.Time, error) {
	return parseDate(c.Generator.Start)
}

// EndDate parses the configured run end.
func (c *Config) EndDate() (time.Time, error) {
	return parseDate(c.Generator.End)
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

func getEnvString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		trimmed := strings.TrimSpace(value)
		if trimmed != "" {
			return trimmed
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.Atoi(strings.TrimSpace(value))
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.ParseBool(strings.TrimSpace(value))
		if err == nil {
			return parsed
		}
	}
	return fallback
}
