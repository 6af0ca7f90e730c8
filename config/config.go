// Package config persists user settings between runs.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
)

const FileName = ".df-translate.yaml"

// Download holds the settings of the download command.
type Download struct {
	Source       string   `yaml:"source"`
	Organization string   `yaml:"organization"`
	Project      string   `yaml:"project"`
	Language     string   `yaml:"language"`
	Resources    []string `yaml:"resources"`
	Directory    string   `yaml:"directory"`
	FilePattern  string   `yaml:"file_pattern"`
}

// PatchExecutable holds the settings of the patch and bisect commands.
type PatchExecutable struct {
	Executable               string              `yaml:"executable"`
	TranslationFile          string              `yaml:"translation_file"`
	LastEncoding             string              `yaml:"last_encoding"`
	LanguageCodepages        map[string]string   `yaml:"language_codepages"`
	FixSpaceExclusions       map[string][]string `yaml:"fix_space_exclusions"`
	AddLeadingTrailingSpaces bool                `yaml:"add_leading_trailing_spaces"`
	Command                  []string            `yaml:"command,omitempty"`
}

type Config struct {
	Download        Download        `yaml:"download"`
	PatchExecutable PatchExecutable `yaml:"patch_executable"`

	path string
}

// Default returns the settings used when no file exists.
func Default() *Config {
	return &Config{
		Download: Download{
			Source:      "github",
			Directory:   ".",
			FilePattern: "{resource}_{language}.po",
		},
		PatchExecutable: PatchExecutable{
			LanguageCodepages: map[string]string{},
			FixSpaceExclusions: map[string][]string{
				"ru": {"Histories of "},
			},
			AddLeadingTrailingSpaces: true,
		},
	}
}

// DefaultPath returns the settings file next to the executable when that
// directory is writable, otherwise in the home directory.
func DefaultPath() string {
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		if writable(dir) {
			return filepath.Join(dir, FileName)
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, FileName)
	}

	return FileName
}

func writable(dir string) bool {
	f, err := os.CreateTemp(dir, ".df-translate-*")
	if err != nil {
		return false
	}
	f.Close()
	os.Remove(f.Name())
	return true
}

// Load reads the settings at path. A missing or malformed file yields the
// defaults. Load never writes; call Save to persist changes.
func Load(path string) *Config {
	cfg := Default()
	cfg.path = path

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Debug().Str("path", path).Msg("No configuration file found, using defaults")
		return cfg
	}
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Failed to read configuration file, using defaults")
		return cfg
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Failed to parse configuration file, using defaults")
		cfg = Default()
		cfg.path = path
		return cfg
	}

	if cfg.PatchExecutable.LanguageCodepages == nil {
		cfg.PatchExecutable.LanguageCodepages = map[string]string{}
	}
	if cfg.PatchExecutable.FixSpaceExclusions == nil {
		cfg.PatchExecutable.FixSpaceExclusions = map[string][]string{}
	}

	log.Debug().Str("path", path).Msg("Loaded configuration")

	return cfg
}

// Path returns the file the settings are saved to.
func (c *Config) Path() string {
	return c.path
}

// Save writes the settings back to their file. Settings without a path are
// not persisted.
func (c *Config) Save() error {
	if c.path == "" {
		return nil
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write configuration file %s: %w", c.path, err)
	}

	return nil
}

// SetExistingPath stores path in field when the file exists.
func SetExistingPath(field *string, path string) bool {
	if path == "" {
		return false
	}
	if _, err := os.Stat(path); err != nil {
		return false
	}
	*field = path
	return true
}

// CodepageFor returns the codepage remembered for language, else the last
// codepage used at all.
func (c *Config) CodepageFor(language string) string {
	if cp, ok := c.PatchExecutable.LanguageCodepages[language]; ok {
		return cp
	}
	return c.PatchExecutable.LastEncoding
}

// RememberCodepage records the codepage chosen for language.
func (c *Config) RememberCodepage(language, codepage string) {
	c.PatchExecutable.LastEncoding = codepage
	if language != "" {
		c.PatchExecutable.LanguageCodepages[language] = codepage
	}
}

// Exclusions returns the originals whose spaces are not fixed for language.
func (c *Config) Exclusions(language string) []string {
	return c.PatchExecutable.FixSpaceExclusions[language]
}

// SetExclusions replaces the exclusions of language; an empty list removes it.
func (c *Config) SetExclusions(language string, exclusions []string) {
	if len(exclusions) == 0 {
		delete(c.PatchExecutable.FixSpaceExclusions, language)
		return
	}
	c.PatchExecutable.FixSpaceExclusions[language] = exclusions
}
