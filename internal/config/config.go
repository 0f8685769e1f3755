package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Portal struct {
	Name      string    `yaml:"name"`
	URL       string    `yaml:"url"`
	Selectors Selectors `yaml:"selectors"`
}

// Selectors are the per-portal CSS selectors for the listing container and
// the fields inside it. pay_salary may be empty; everything else is required.
type Selectors struct {
	Listing     string `yaml:"listing"`
	Title       string `yaml:"title"`
	Company     string `yaml:"company"`
	Location    string `yaml:"location"`
	Description string `yaml:"description"`
	PostDate    string `yaml:"post_date"`
	PaySalary   string `yaml:"pay_salary"`
}

type Config struct {
	App struct {
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Skills []string `yaml:"skills"`

	Portals []Portal `yaml:"portals"`

	Sheets struct {
		SpreadsheetID   string `yaml:"spreadsheet_id"`
		Worksheet       string `yaml:"worksheet"`
		CredentialsFile string `yaml:"credentials_file"`
		KeyringAccount  string `yaml:"keyring_account"`
	} `yaml:"sheets"`

	Schedule struct {
		At         string `yaml:"at"` // "HH:MM" local wall clock
		RunOnStart bool   `yaml:"run_on_start"`
	} `yaml:"schedule"`

	Notify struct {
		Type           string `yaml:"type"` // "log" or "telegram"
		TelegramToken  string `yaml:"telegram_token"`
		TelegramChatID int64  `yaml:"telegram_chat_id"`
	} `yaml:"notify"`

	HTTP struct {
		TimeoutSeconds    int     `yaml:"timeout_seconds"`
		RequestsPerSecond float64 `yaml:"requests_per_second"`
	} `yaml:"http"`
}

// Load reads the YAML file at path. ${VAR} references are expanded from the
// environment before parsing so credentials never live in the file itself.
func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal([]byte(os.ExpandEnv(string(b))), &cfg)
	return cfg, err
}
