// Package config provides configuration loading for swiftqa using TOML.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"swiftqa/browser"
	"swiftqa/executor"
	"swiftqa/translator"
)

// Target settings
type Target struct {
	URL              string `toml:"url"`
	InputPlaceholder string `toml:"inputPlaceholder"`
	OutputHeading    string `toml:"outputHeading"`
}

// Browser settings
type Browser struct {
	UserAgent      string `toml:"userAgent"`
	TimeoutSeconds int    `toml:"timeoutSeconds"`
	ChromePath     string `toml:"chromePath"`
	Headless       *bool  `toml:"headless"` // nil = not set
}

// Timing settings. Zero is a meaningful value for every window, so nil
// marks "not set".
type Timing struct {
	OutputTimeoutMs    *int `toml:"outputTimeoutMs"`
	SettleDelayMs      *int `toml:"settleDelayMs"`
	KeystrokeDelayMs   *int `toml:"keystrokeDelayMs"`
	ContainsTimeoutMs  *int `toml:"containsTimeoutMs"`
	CaseTimeoutSeconds *int `toml:"caseTimeoutSeconds"` // 0 = no per-case limit
}

// Run settings
type Run struct {
	Concurrency int    `toml:"concurrency"`
	ReportDir   string `toml:"reportDir"`
	HistoryDB   string `toml:"historyDB"`
	CatalogFile string `toml:"catalogFile"`
}

// Log settings
type Log struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// Config is the main configuration struct
type Config struct {
	Target  Target  `toml:"target"`
	Browser Browser `toml:"browser"`
	Timing  Timing  `toml:"timing"`
	Run     Run     `toml:"run"`
	Log     Log     `toml:"log"`
}

// Default returns the default configuration.
func Default() *Config {
	headless := true
	return &Config{
		Target: Target{
			URL:              translator.DefaultURL,
			InputPlaceholder: translator.DefaultInputPlaceholder,
			OutputHeading:    translator.DefaultOutputHeading,
		},
		Browser: Browser{
			UserAgent:      browser.DefaultOptions().UserAgent,
			TimeoutSeconds: 30,
			ChromePath:     "",
			Headless:       &headless,
		},
		Timing: Timing{
			OutputTimeoutMs:    intPtr(10000),
			SettleDelayMs:      intPtr(1000),
			KeystrokeDelayMs:   intPtr(200),
			ContainsTimeoutMs:  intPtr(10000),
			CaseTimeoutSeconds: intPtr(60),
		},
		Run: Run{
			Concurrency: 3,
			ReportDir:   "",
			HistoryDB:   "",
			CatalogFile: "",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// configDir returns the configuration directory path.
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "swiftqa"), nil
}

// ConfigPath returns the path to the user's config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load loads configuration, layering the user config on top of defaults.
// Returns the default config if no user config exists.
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return Default(), nil
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads the config at path on top of defaults.
func LoadFile(path string) (*Config, error) {
	var user Config
	if _, err := toml.DecodeFile(path, &user); err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	cfg := merge(Default(), &user)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// merge layers user config on top of defaults.
// Only non-zero values from user config override defaults.
func merge(defaults, user *Config) *Config {
	result := *defaults

	mergeString(&result.Target.URL, user.Target.URL)
	mergeString(&result.Target.InputPlaceholder, user.Target.InputPlaceholder)
	mergeString(&result.Target.OutputHeading, user.Target.OutputHeading)

	mergeString(&result.Browser.UserAgent, user.Browser.UserAgent)
	mergeInt(&result.Browser.TimeoutSeconds, user.Browser.TimeoutSeconds)
	mergeString(&result.Browser.ChromePath, user.Browser.ChromePath)
	if user.Browser.Headless != nil {
		result.Browser.Headless = user.Browser.Headless
	}

	mergeIntPtr(&result.Timing.OutputTimeoutMs, user.Timing.OutputTimeoutMs)
	mergeIntPtr(&result.Timing.SettleDelayMs, user.Timing.SettleDelayMs)
	mergeIntPtr(&result.Timing.KeystrokeDelayMs, user.Timing.KeystrokeDelayMs)
	mergeIntPtr(&result.Timing.ContainsTimeoutMs, user.Timing.ContainsTimeoutMs)
	mergeIntPtr(&result.Timing.CaseTimeoutSeconds, user.Timing.CaseTimeoutSeconds)

	mergeInt(&result.Run.Concurrency, user.Run.Concurrency)
	mergeString(&result.Run.ReportDir, user.Run.ReportDir)
	mergeString(&result.Run.HistoryDB, user.Run.HistoryDB)
	mergeString(&result.Run.CatalogFile, user.Run.CatalogFile)

	mergeString(&result.Log.Level, user.Log.Level)

	return &result
}

func mergeString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

func mergeInt(dst *int, src int) {
	if src != 0 {
		*dst = src
	}
}

func mergeIntPtr(dst **int, src *int) {
	if src != nil {
		*dst = src
	}
}

func intPtr(n int) *int {
	return &n
}

func intValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// Validate checks values that would make a run meaningless.
func (c *Config) Validate() error {
	if c.Target.URL == "" {
		return fmt.Errorf("target url is empty")
	}
	if c.Run.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Run.Concurrency)
	}
	for name, v := range map[string]*int{
		"outputTimeoutMs":    c.Timing.OutputTimeoutMs,
		"settleDelayMs":      c.Timing.SettleDelayMs,
		"keystrokeDelayMs":   c.Timing.KeystrokeDelayMs,
		"containsTimeoutMs":  c.Timing.ContainsTimeoutMs,
		"caseTimeoutSeconds": c.Timing.CaseTimeoutSeconds,
	} {
		if intValue(v) < 0 {
			return fmt.Errorf("%s cannot be negative", name)
		}
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// TargetPage returns the page under test.
func (c *Config) TargetPage() translator.Target {
	return translator.Target{
		URL:              c.Target.URL,
		InputPlaceholder: c.Target.InputPlaceholder,
		OutputHeading:    c.Target.OutputHeading,
	}
}

// BrowserOptions returns the options for launching Chrome.
func (c *Config) BrowserOptions() browser.Options {
	return browser.Options{
		UserAgent:      c.Browser.UserAgent,
		TimeoutSeconds: c.Browser.TimeoutSeconds,
		ChromePath:     c.Browser.ChromePath,
		Headless:       c.Browser.Headless == nil || *c.Browser.Headless,
	}
}

// ExecutorTiming returns the case observation windows.
func (c *Config) ExecutorTiming() executor.Timing {
	return executor.Timing{
		OutputTimeout:   ms(intValue(c.Timing.OutputTimeoutMs)),
		SettleDelay:     ms(intValue(c.Timing.SettleDelayMs)),
		KeystrokeDelay:  ms(intValue(c.Timing.KeystrokeDelayMs)),
		ContainsTimeout: ms(intValue(c.Timing.ContainsTimeoutMs)),
	}
}

// CaseTimeout bounds one whole case.
func (c *Config) CaseTimeout() time.Duration {
	return time.Duration(intValue(c.Timing.CaseTimeoutSeconds)) * time.Second
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	return l, nil
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// DefaultTOML returns the default configuration as a TOML string.
// Used by init-config to generate a user config file.
func DefaultTOML() string {
	return `# swiftqa configuration
# Save to ~/.config/swiftqa/config.toml and customize
# Only include settings you want to change from defaults

# Page under test
[target]
url = "https://www.swifttranslator.com/"
inputPlaceholder = "Input Your Singlish Text Here."
outputHeading = "Sinhala"      # Output is the div right after the panel title containing this

# Browser settings
[browser]
userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
timeoutSeconds = 30            # Page load budget per case
chromePath = ""                # Path to Chrome/Chromium (empty = auto-detect)
headless = true

# Observation windows
[timing]
outputTimeoutMs = 10000        # Wait for output on exact-match cases
settleDelayMs = 1000           # Fixed wait on malformed-input cases
keystrokeDelayMs = 200         # Delay between keystrokes on UI cases
containsTimeoutMs = 10000      # Wait for live output on UI cases
caseTimeoutSeconds = 60        # Budget for a whole case (0 = unlimited)

# Run settings
[run]
concurrency = 3                # Cases in flight, one tab each
reportDir = ""                 # Write attachments here, one directory per run
historyDB = ""                 # SQLite run history
catalogFile = ""               # Extra scenarios in TOML

[log]
level = "info"                 # debug, info, warn, error
`
}
