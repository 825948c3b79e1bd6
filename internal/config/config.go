package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the drafter.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Google  GoogleConfig  `mapstructure:"google"`
	Model   ModelConfig   `mapstructure:"model"`
	Draft   DraftConfig   `mapstructure:"draft"`
	Sheet   SheetConfig   `mapstructure:"sheet"`
	Profile ProfileConfig `mapstructure:"profile"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GoogleConfig holds the OAuth client and token cache locations.
type GoogleConfig struct {
	// CredentialsFile is the OAuth 2.0 client secret JSON downloaded from the Google Cloud console.
	CredentialsFile string `mapstructure:"credentials_file"`
	// TokenFile caches the authorized token between runs.
	TokenFile string `mapstructure:"token_file"`
}

// ModelConfig holds generative model settings.
type ModelConfig struct {
	// APIKeyFile stores the Google AI Studio API key.
	APIKeyFile string `mapstructure:"api_key_file"`
	// BaseURL is the OpenAI-compatible endpoint of the provider.
	BaseURL string `mapstructure:"base_url"`
	// Primary is the model tried first for every generation.
	Primary string `mapstructure:"primary"`
	// Fallback is tried exactly once when the primary call fails.
	Fallback string `mapstructure:"fallback"`
}

// DraftConfig holds draft composition settings.
type DraftConfig struct {
	// ObserverCC receives a copy of every draft for review. Optional.
	ObserverCC string `mapstructure:"observer_cc"`
}

// SheetConfig holds the batch-mode spreadsheet source.
type SheetConfig struct {
	// ID is the cached spreadsheet identifier. The batch command's --sheet
	// flag overrides it per run.
	ID string `mapstructure:"id"`
	// Range is the rectangular block read per batch. It starts below the
	// header row, so the reader never sees column titles.
	Range string `mapstructure:"range"`
}

// ProfileConfig identifies the senders rendered into every prompt.
type ProfileConfig struct {
	// Names is how the senders sign the email, e.g. "Ada Lovelace and Alan Turing".
	Names string `mapstructure:"names"`
	// School is the institution named in the self-introduction.
	School string `mapstructure:"school"`
	// Grade is the current year level, e.g. "juniors".
	Grade string `mapstructure:"grade"`
	// Coursework is the comma-separated list of completed courses.
	Coursework string `mapstructure:"coursework"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.coldreach")

	// Set defaults
	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	// Bind environment variables
	v.SetEnvPrefix("COLDREACH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Logging defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Google client defaults match the filenames the setup instructions use
	v.SetDefault("google.credentials_file", "credentials.json")
	v.SetDefault("google.token_file", "token.json")

	// Model defaults
	v.SetDefault("model.api_key_file", "api_key.txt")
	v.SetDefault("model.base_url", "https://generativelanguage.googleapis.com/v1beta/openai/")
	v.SetDefault("model.primary", "gemini-2.0-flash")
	v.SetDefault("model.fallback", "gemini-2.0-flash-lite")

	// Draft defaults
	v.SetDefault("draft.observer_cc", "")

	// Sheet defaults: four columns (name, email, source, context), header row skipped
	v.SetDefault("sheet.id", "")
	v.SetDefault("sheet.range", "Sheet1!A2:D")

	// Sender profile defaults
	v.SetDefault("profile.names", "Pranav Kolli and Ayush Patel")
	v.SetDefault("profile.school", "Arnold O. Beckman High School")
	v.SetDefault("profile.grade", "juniors")
	v.SetDefault("profile.coursework", "AP Biology, AP Chemistry, and Human Body Systems")
}
