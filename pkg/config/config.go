/*
Package config manages the TOML config for wordrank.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/wordrank/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Corpus  CorpusConfig  `toml:"corpus"`
	Extract ExtractConfig `toml:"extract"`
	Rank    RankConfig    `toml:"rank"`
	Server  ServerConfig  `toml:"server"`
}

// CorpusConfig selects the training data.
type CorpusConfig struct {
	// Files are trained in order. When empty every corpus file in Dir is used.
	Files      []string `toml:"files"`
	Dir        string   `toml:"dir"`
	IgnoreTags []string `toml:"ignore_tags"`
}

// ExtractConfig tunes phrase building and deduplication.
type ExtractConfig struct {
	MaxPhraseValue  int `toml:"max_phrase_value"`
	SuffixTolerance int `toml:"suffix_tolerance"`
}

// RankConfig holds listing sizes.
type RankConfig struct {
	DefaultLimit int `toml:"default_limit"`
	MaxLimit     int `toml:"max_limit"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	MaxTextBytes int `toml:"max_text_bytes"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/wordrank
// 2. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", "wordrank")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: ~/.config/wordrank/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Dir:        "data",
			IgnoreTags: []string{"PUNCT", "X", "NOUN", "PROPN"},
		},
		Extract: ExtractConfig{
			MaxPhraseValue:  2,
			SuffixTolerance: 3,
		},
		Rank: RankConfig{
			DefaultLimit: 10,
			MaxLimit:     100,
		},
		Server: ServerConfig{
			MaxTextBytes: 1 << 20,
		},
	}
}

// Validate resets values that would break processing back to their defaults.
func (c *Config) Validate() {
	def := DefaultConfig()
	if c.Extract.MaxPhraseValue < 2 {
		log.Warnf("extract.max_phrase_value %d is below 2, using %d", c.Extract.MaxPhraseValue, def.Extract.MaxPhraseValue)
		c.Extract.MaxPhraseValue = def.Extract.MaxPhraseValue
	}
	if c.Extract.SuffixTolerance < 0 {
		log.Warnf("extract.suffix_tolerance %d is negative, using %d", c.Extract.SuffixTolerance, def.Extract.SuffixTolerance)
		c.Extract.SuffixTolerance = def.Extract.SuffixTolerance
	}
	if c.Rank.MaxLimit <= 0 {
		c.Rank.MaxLimit = def.Rank.MaxLimit
	}
	if c.Rank.DefaultLimit <= 0 || c.Rank.DefaultLimit > c.Rank.MaxLimit {
		c.Rank.DefaultLimit = min(def.Rank.DefaultLimit, c.Rank.MaxLimit)
	}
	if c.Server.MaxTextBytes <= 0 {
		c.Server.MaxTextBytes = def.Server.MaxTextBytes
	}
}

// ClampLimit maps a requested listing size into [1, MaxLimit],
// with 0 or less meaning DefaultLimit.
func (r RankConfig) ClampLimit(limit int) int {
	if limit <= 0 {
		return r.DefaultLimit
	}
	return min(limit, r.MaxLimit)
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. A file that does not decode as a whole
// is recovered section by section.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		config = tryPartialParse(configPath)
	}
	config.Validate()
	return config, nil
}

// tryPartialParse keeps every key that has the right type and falls back to
// defaults for the rest
func tryPartialParse(configPath string) *Config {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config
	}

	if section, ok := utils.ExtractSection(tempConfig, "corpus"); ok {
		extractCorpusConfig(section, &config.Corpus)
	}
	if section, ok := utils.ExtractSection(tempConfig, "extract"); ok {
		extractExtractConfig(section, &config.Extract)
	}
	if section, ok := utils.ExtractSection(tempConfig, "rank"); ok {
		extractRankConfig(section, &config.Rank)
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		if val, ok := utils.ExtractInt64(section, "max_text_bytes"); ok {
			config.Server.MaxTextBytes = val
		}
	}
	return config
}

func extractCorpusConfig(data map[string]any, corpus *CorpusConfig) {
	if val, ok := utils.ExtractStringSlice(data, "files"); ok {
		corpus.Files = val
	}
	if val, ok := utils.ExtractString(data, "dir"); ok {
		corpus.Dir = val
	}
	if val, ok := utils.ExtractStringSlice(data, "ignore_tags"); ok {
		corpus.IgnoreTags = val
	}
}

func extractExtractConfig(data map[string]any, extract *ExtractConfig) {
	if val, ok := utils.ExtractInt64(data, "max_phrase_value"); ok {
		extract.MaxPhraseValue = val
	}
	if val, ok := utils.ExtractInt64(data, "suffix_tolerance"); ok {
		extract.SuffixTolerance = val
	}
}

func extractRankConfig(data map[string]any, rank *RankConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		rank.DefaultLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		rank.MaxLimit = val
	}
}

// RebuildConfigFile force creates a new config.toml at default
func RebuildConfigFile() (string, error) {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return "", err
	}
	if err := utils.EnsureDir(filepath.Dir(defaultPath)); err != nil {
		return "", err
	}
	return defaultPath, SaveConfig(DefaultConfig(), defaultPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		return "builtin defaults"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// CorpusFiles returns the files to train from: Files when set (relative
// paths resolved against baseDir), otherwise every file in dir with one of exts.
func (c *CorpusConfig) CorpusFiles(baseDir, dir string, exts []string) ([]string, error) {
	if len(c.Files) > 0 {
		files := make([]string, len(c.Files))
		for i, f := range c.Files {
			if !filepath.IsAbs(f) && baseDir != "" {
				f = filepath.Join(baseDir, f)
			}
			files[i] = f
		}
		return files, nil
	}
	return utils.ListFiles(dir, exts)
}
