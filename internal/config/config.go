package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jask/sandwich/internal/catalog"
)

// Config holds application configuration.
type Config struct {
	UI          UIConfig           `mapstructure:"ui"`
	Log         LogConfig          `mapstructure:"log"`
	Ingredients []IngredientConfig `mapstructure:"ingredients"`

	// Source is the config file that was read, empty when defaults only.
	Source string `mapstructure:"-"`
}

// UIConfig holds presentation and input settings.
type UIConfig struct {
	Title         string        `mapstructure:"title"`
	Mouse         bool          `mapstructure:"mouse"`
	AltScreen     bool          `mapstructure:"alt_screen"`
	DragThreshold int           `mapstructure:"drag_threshold"`
	Flash         time.Duration `mapstructure:"flash"`
}

// LogConfig controls the diagnostic log file.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// IngredientConfig is one [[ingredients]] entry.
type IngredientConfig struct {
	ID    string `mapstructure:"id"`
	Name  string `mapstructure:"name"`
	Icon  string `mapstructure:"icon"`
	Color string `mapstructure:"color"`
}

// Load reads configuration from file and env. Env var overrides use prefix SANDWICH_.
// path wins over $SANDWICH_CONFIG, which wins over ~/.config/sandwich/config.toml.
// A path passed in must exist; a missing file named by the env var or the
// default location means defaults only.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.title", "Sandwich Builder")
	v.SetDefault("ui.mouse", true)
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.drag_threshold", 1)
	v.SetDefault("ui.flash", 350*time.Millisecond)
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	explicit := strings.TrimSpace(path)
	mustExist := explicit != ""
	if explicit == "" {
		explicit = strings.TrimSpace(os.Getenv("SANDWICH_CONFIG"))
	}
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "sandwich"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SANDWICH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	source := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || (!mustExist && errors.Is(err, fs.ErrNotExist))
		if !missing {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		source = v.ConfigFileUsed()
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Source = source
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	if c.UI.DragThreshold < 0 {
		return fmt.Errorf("ui.drag_threshold must not be negative, got %d", c.UI.DragThreshold)
	}
	if c.UI.Flash < 0 {
		return fmt.Errorf("ui.flash must not be negative, got %s", c.UI.Flash)
	}
	return nil
}

// Templates returns the configured ingredients, or the built-in set when the
// config lists none.
func (c Config) Templates() []catalog.Template {
	if len(c.Ingredients) == 0 {
		return catalog.DefaultTemplates()
	}
	out := make([]catalog.Template, 0, len(c.Ingredients))
	for _, in := range c.Ingredients {
		out = append(out, catalog.Template{ID: in.ID, Name: in.Name, Icon: in.Icon, Color: in.Color})
	}
	return out
}
