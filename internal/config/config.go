package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. TERMFOLIO_BOOT_SKIP=true
const EnvPrefix = "TERMFOLIO"

// Config holds all application configuration
type Config struct {
	Boot    BootConfig
	Desktop DesktopConfig
	Clock   ClockConfig
	Prefs   PrefsConfig
	Profile ProfileConfig
	Log     LogConfig
}

// BootConfig controls the boot animation
type BootConfig struct {
	Delay       time.Duration // desktop revealed after this long
	TypingDelay time.Duration `mapstructure:"typing_delay"` // per character
	TypingStart time.Duration `mapstructure:"typing_start"` // before the first character
	Skip        bool
}

// DesktopConfig holds window manager settings
type DesktopConfig struct {
	CascadeStep   int `mapstructure:"cascade_step"`
	MaximizeInset int `mapstructure:"maximize_inset"`
}

// ClockConfig holds the top bar clock format
type ClockConfig struct {
	Format string
}

// PrefsConfig locates the preference file
type PrefsConfig struct {
	Path string // empty means the user config dir
}

// ProfileConfig locates the portfolio content
type ProfileConfig struct {
	Path string // empty means the embedded profile
}

// LogConfig controls the log file
type LogConfig struct {
	File  string // empty means the user cache dir
	Debug bool
}

// Default returns the default configuration
var Default = Config{
	Boot: BootConfig{
		Delay:       5 * time.Second,
		TypingDelay: 50 * time.Millisecond,
		TypingStart: 500 * time.Millisecond,
	},
	Desktop: DesktopConfig{
		CascadeStep:   2,
		MaximizeInset: 1,
	},
	Clock: ClockConfig{
		Format: "Jan 2 15:04",
	},
}

// Load reads configuration from defaults, an optional config file and the
// environment. An explicit path must exist; the default location may not.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("boot.delay", Default.Boot.Delay)
	v.SetDefault("boot.typing_delay", Default.Boot.TypingDelay)
	v.SetDefault("boot.typing_start", Default.Boot.TypingStart)
	v.SetDefault("boot.skip", Default.Boot.Skip)
	v.SetDefault("desktop.cascade_step", Default.Desktop.CascadeStep)
	v.SetDefault("desktop.maximize_inset", Default.Desktop.MaximizeInset)
	v.SetDefault("clock.format", Default.Clock.Format)
	v.SetDefault("prefs.path", Default.Prefs.Path)
	v.SetDefault("profile.path", Default.Profile.Path)
	v.SetDefault("log.file", Default.Log.File)
	v.SetDefault("log.debug", Default.Log.Debug)

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "termfolio"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
