package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	SlackBotToken  string
	SlackChannelID string
	Timezone       string
	NotifyDay      int // ISO 8601 weekday, 1 = Monday
	NotifyTime     string

	// Derived from the raw values above during Load.
	Location   *time.Location
	NotifyHour int
	NotifyMin  int
}

type rawConfig struct {
	SlackBotToken  string `env:"SLACK_BOT_TOKEN,required,notEmpty"`
	SlackChannelID string `env:"SLACK_CHANNEL_ID,required,notEmpty"`
	Timezone       string `env:"TIMEZONE" envDefault:"America/New_York"`
	NotifyDay      int    `env:"NOTIFY_DAY" envDefault:"3"`
	NotifyTime     string `env:"NOTIFY_TIME" envDefault:"00:00"`
}

// Load reads configuration from the environment and validates it.
// Any missing required value or malformed schedule knob is an error;
// the caller is expected to treat it as fatal.
func Load() (*Config, error) {
	raw := rawConfig{}
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	if raw.NotifyDay < 1 || raw.NotifyDay > 7 {
		return nil, fmt.Errorf("NOTIFY_DAY must be an ISO weekday between 1 and 7, got %d", raw.NotifyDay)
	}

	hour, minute, err := parseNotifyTime(raw.NotifyTime)
	if err != nil {
		return nil, fmt.Errorf("invalid NOTIFY_TIME: %w", err)
	}

	loc, err := time.LoadLocation(raw.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	return &Config{
		SlackBotToken:  raw.SlackBotToken,
		SlackChannelID: raw.SlackChannelID,
		Timezone:       raw.Timezone,
		NotifyDay:      raw.NotifyDay,
		NotifyTime:     raw.NotifyTime,
		Location:       loc,
		NotifyHour:     hour,
		NotifyMin:      minute,
	}, nil
}

func parseNotifyTime(value string) (hour, minute int, err error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected HH:MM, got %q", value)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", value)
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", value)
	}

	return hour, minute, nil
}
