package src

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the startup configuration for the shell. It is read once at
// launch; the shell never writes settings back.
type Config struct {
	Model          string
	PermissionMode string
	LogLevel       string
	LogFormat      string
	Platform       string
	Demo           bool
}

// LoadConfig reads opdeck.yaml (working directory or ~/.config/opdeck) and
// OPDECK_* environment variables, env winning. Unknown model or
// permission-mode ids are rejected against the registries.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetConfigName("opdeck")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/opdeck")

	v.SetEnvPrefix("OPDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("model", "sonnet")
	v.SetDefault("permission_mode", "default")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "auto")
	v.SetDefault("platform", "")
	v.SetDefault("demo", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Model:          v.GetString("model"),
		PermissionMode: v.GetString("permission_mode"),
		LogLevel:       v.GetString("log.level"),
		LogFormat:      v.GetString("log.format"),
		Platform:       v.GetString("platform"),
		Demo:           v.GetBool("demo"),
	}

	if _, ok := LookupModel(cfg.Model); !ok {
		return Config{}, fmt.Errorf("unknown model %q (known: %s)", cfg.Model, strings.Join(ModelIDs(), ", "))
	}
	if _, ok := LookupPermissionMode(cfg.PermissionMode); !ok {
		return Config{}, fmt.Errorf("unknown permission mode %q (known: %s)", cfg.PermissionMode, strings.Join(PermissionModeIDs(), ", "))
	}
	return cfg, nil
}
