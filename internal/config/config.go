package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/kerem-kaynak/phrase-matcher/internal/logger"
	"github.com/kerem-kaynak/phrase-matcher/pkg/phrase"
	"gopkg.in/yaml.v3"
)

// Config is the phrasescan runtime configuration.
type Config struct {
	IgnoreCase  bool             `yaml:"ignore_case"`
	Normalizers []string         `yaml:"normalizers"`
	Phrases     []string         `yaml:"phrases"`
	PhraseFiles []string         `yaml:"phrase_files"`
	CacheSize   int              `yaml:"cache_size"`
	Workers     int              `yaml:"workers"`
	Log         logger.LogConfig `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Workers: runtime.NumCPU(),
		Log:     logger.LogConfig{Level: "info", Console: true},
	}
}

// Load reads the configuration file from disk. An empty path yields Default.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration and fills defaults.
func (c *Config) Validate() error {
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("invalid cache_size:%d", c.CacheSize)
	}
	for _, name := range c.Normalizers {
		if _, ok := phrase.StepByName(name); !ok {
			return fmt.Errorf("unknown normalizer:%s", name)
		}
	}
	return nil
}

// AllPhrases returns the inline phrases followed by those of every phrase file.
func (c *Config) AllPhrases() ([]string, error) {
	phrases := make([]string, 0, len(c.Phrases))
	phrases = append(phrases, c.Phrases...)
	for _, path := range c.PhraseFiles {
		fromFile, err := phrase.LoadPhrases(path)
		if err != nil {
			return nil, err
		}
		phrases = append(phrases, fromFile...)
	}
	return phrases, nil
}

// Builder returns a phrase builder configured from c, with all phrases added.
func (c *Config) Builder() (*phrase.Builder, error) {
	phrases, err := c.AllPhrases()
	if err != nil {
		return nil, err
	}
	b := phrase.NewBuilder().WithCache(c.CacheSize).AddPhrases(phrases)
	if c.IgnoreCase {
		b.IgnoreCase()
	}
	if len(c.Normalizers) > 0 {
		n, err := phrase.NewNormalizerFromNames(c.Normalizers...)
		if err != nil {
			return nil, err
		}
		b.WithNormalizer(n)
	}
	return b, nil
}
