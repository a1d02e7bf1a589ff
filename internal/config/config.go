package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Sheets SheetsConfig `yaml:"sheets"`
	Weeks  WeeksConfig  `yaml:"weeks"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	Console    bool   `yaml:"console"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type SheetsConfig struct {
	SpreadsheetID   string `yaml:"spreadsheet_id"`
	CredentialsFile string `yaml:"credentials_file"`
	CredentialsJSON string `yaml:"-"` // env only, never from file
	MembersRange    string `yaml:"members_range"`
	WeeksRange      string `yaml:"weeks_range"`
	RecordsRange    string `yaml:"records_range"`
}

// WeeksConfig selects how the week table is built: "sheet" reads the Weeks
// range, "generated" derives ISO weeks for Year (0 means the current year).
type WeeksConfig struct {
	Mode string `yaml:"mode"`
	Year int    `yaml:"year"`
}

func Load(configFile string) *Config {
	c := &Config{
		Server: ServerConfig{Port: 9712},
		Log:    LogConfig{Level: "info", Console: true, MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 30},
		Sheets: SheetsConfig{
			CredentialsFile: "etc/service-account.json",
			MembersRange:    "Members!A:C",
			WeeksRange:      "Weeks!A:C",
			RecordsRange:    "dB!A:J",
		},
		Weeks: WeeksConfig{Mode: "generated"},
	}

	paths := []string{"etc/config-dev.yaml", "/etc/weekly-check/config.yaml"}
	if configFile != "" {
		paths = []string{configFile}
	}
	for _, path := range paths {
		if data, err := os.ReadFile(path); err == nil {
			yaml.Unmarshal(data, c)
			break
		}
	}

	envOverride(&c.Sheets.SpreadsheetID, "SHEET_ID")
	envOverride(&c.Sheets.CredentialsFile, "SHEET_CREDENTIALS_FILE")
	envOverride(&c.Sheets.CredentialsJSON, "SHEET_CREDENTIALS_JSON")
	envOverride(&c.Sheets.MembersRange, "SHEET_MEMBERS_RANGE")
	envOverride(&c.Sheets.WeeksRange, "SHEET_WEEKS_RANGE")
	envOverride(&c.Sheets.RecordsRange, "SHEET_RECORDS_RANGE")
	envOverride(&c.Weeks.Mode, "WEEKS_MODE")
	envOverride(&c.Log.Level, "LOG_LEVEL")
	envOverride(&c.Log.File, "LOG_FILE")
	envOverrideInt(&c.Server.Port, "PORT")
	envOverrideInt(&c.Weeks.Year, "WEEKS_YEAR")

	return c
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
