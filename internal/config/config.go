// Package config loads application configuration: database location, shell
// and placeholder for external commands, and the user macro table. Values
// come from ~/.config/paq/config.toml (override with PAQ_CONFIG) with env
// overrides under the PAQ prefix.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Exec     ExecConfig
	Macros   map[string]string
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// ExecConfig holds external command execution settings.
type ExecConfig struct {
	// Shell runs exec command strings via "<shell> -ic <cmd>".
	Shell string
	// Placeholder is replaced with the queued record names.
	Placeholder string
}

// Load reads configuration from file and env.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "paq", "paq.db"))
	v.SetDefault("exec.shell", "bash")
	v.SetDefault("exec.placeholder", "%p")
	v.SetDefault("macros", map[string]string{})

	v.SetConfigType("toml")

	cfgPath := os.Getenv("PAQ_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "paq"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PAQ")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// config file is optional
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Macros == nil {
		c.Macros = map[string]string{}
	}
	return c, nil
}

// MacroTable returns the macro name to command string mapping. It satisfies
// the session's config provider contract and is re-read on reload.
func (c Config) MacroTable() map[string]string {
	return c.Macros
}
