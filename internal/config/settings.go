package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SettingsFileName is the name of the settings file inside Dir()
const SettingsFileName = "config.yaml"

// Settings holds the knobs of the practice workflow. Zero values fall back to defaults.
type Settings struct {
	IntegrationBranch string `yaml:"integrationBranch,omitempty"`
	FeatureBranchA    string `yaml:"featureBranchA,omitempty"`
	FeatureBranchB    string `yaml:"featureBranchB,omitempty"`
	BranchPrefix      string `yaml:"branchPrefix,omitempty"`
	TrackedFile       string `yaml:"trackedFile,omitempty"`
	DefaultUser       string `yaml:"defaultUser,omitempty"`
	EmailDomain       string `yaml:"emailDomain,omitempty"`
	TempDirPrefix     string `yaml:"tempDirPrefix,omitempty"`
	LogFile           string `yaml:"logFile,omitempty"`
	// NoOpen skips launching an application for the tracked file
	NoOpen bool `yaml:"noOpen,omitempty"`

	// StateDir is where the marker and user log live. Not read from the file.
	StateDir string `yaml:"-"`
}

// DefaultSettings returns the settings used when no config file exists
func DefaultSettings() *Settings {
	return &Settings{
		IntegrationBranch: "main",
		FeatureBranchA:    "feature-a",
		FeatureBranchB:    "feature-b",
		BranchPrefix:      "feature-",
		TrackedFile:       "hello.txt",
		DefaultUser:       "Anonymous",
		EmailDomain:       "example.com",
		TempDirPrefix:     "git_conflict_",
	}
}

// LoadSettings reads settings from Dir()/config.yaml and applies environment overrides.
// A missing file is not an error.
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(SettingsPath())
}

// SettingsPath returns the settings file inside Dir(), or "" when no config
// directory can be resolved
func SettingsPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, SettingsFileName)
}

// LoadSettingsFrom reads settings from the given file. An empty path or a missing
// file yields the defaults.
func LoadSettingsFrom(path string) (*Settings, error) {
	settings := DefaultSettings()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			var fromFile Settings
			if err := yaml.Unmarshal(data, &fromFile); err != nil {
				return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
			}
			settings.merge(&fromFile)
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read settings: %w", err)
		}
	}

	if dir := os.Getenv("CONFLICTLAB_STATE_DIR"); dir != "" {
		settings.StateDir = dir
	}
	if logFile := os.Getenv("CONFLICTLAB_LOG_FILE"); logFile != "" {
		settings.LogFile = logFile
	}

	if os.Getenv("CONFLICTLAB_NO_OPEN") != "" {
		settings.NoOpen = true
	}

	if settings.StateDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		settings.StateDir = wd
	}

	return settings, nil
}

// Save writes the settings to the given path as YAML
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

// FeatureBranches returns the two feature branch names
func (s *Settings) FeatureBranches() [2]string {
	return [2]string{s.FeatureBranchA, s.FeatureBranchB}
}

// SiblingBranch returns the feature branch that is not current
func (s *Settings) SiblingBranch(current string) string {
	if current == s.FeatureBranchB {
		return s.FeatureBranchA
	}
	return s.FeatureBranchB
}

func (s *Settings) merge(other *Settings) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&s.IntegrationBranch, other.IntegrationBranch)
	set(&s.FeatureBranchA, other.FeatureBranchA)
	set(&s.FeatureBranchB, other.FeatureBranchB)
	set(&s.BranchPrefix, other.BranchPrefix)
	set(&s.TrackedFile, other.TrackedFile)
	set(&s.DefaultUser, other.DefaultUser)
	set(&s.EmailDomain, other.EmailDomain)
	set(&s.TempDirPrefix, other.TempDirPrefix)
	set(&s.LogFile, other.LogFile)
	if other.NoOpen {
		s.NoOpen = true
	}
}
