package config

import (
	"slices"
	"strings"
	"time"

	"github.com/cohesivestack/valgo"
	"github.com/spf13/viper"
	"github.com/theapemachine/vimnav/pkg/errors"
	"github.com/theapemachine/vimnav/pkg/script"
)

/*
Config is the decoded form of ~/.vimnav/config.yml.
*/
type Config struct {
	Browser BrowserConfig    `mapstructure:"browser"`
	Page    script.Selectors `mapstructure:"page"`
	Keys    KeysConfig       `mapstructure:"keys"`
	Log     LogConfig        `mapstructure:"log"`
}

type BrowserConfig struct {
	URL      string        `mapstructure:"url"`
	Headless bool          `mapstructure:"headless"`
	Bin      string        `mapstructure:"bin"`
	Queue    int           `mapstructure:"queue"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

/*
Alias renames a key as the terminal reports it to the name the command table
expects. Kept as a list because viper lowercases map keys, and "G" must stay
distinct from "g".
*/
type Alias struct {
	Key  string `mapstructure:"key"`
	Name string `mapstructure:"name"`
}

type KeysConfig struct {
	Aliases []Alias `mapstructure:"aliases"`
}

type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

/*
SetDefaults registers the built-in values so vimnav runs without a config
file.
*/
func SetDefaults(v *viper.Viper) {
	sel := script.DefaultSelectors()

	v.SetDefault("browser.url", "https://discord.com/app")
	v.SetDefault("browser.headless", false)
	v.SetDefault("browser.bin", "")
	v.SetDefault("browser.queue", 64)
	v.SetDefault("browser.timeout", "5s")
	v.SetDefault("page.scroller", sel.Scroller)
	v.SetDefault("page.clickable", sel.Clickable)
	v.SetDefault("keys.aliases", []map[string]string{
		{"key": "G", "name": "shiftg"},
		{"key": "home", "name": "gg"},
		{"key": "end", "name": "shiftg"},
	})
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

/*
Load decodes and validates the configuration held by v.
*/
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrInvalidConfig.WithMessagef("decode: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) Validate() error {
	val := valgo.Is(
		valgo.String(cfg.Browser.URL, "browser.url").Not().Blank(),
		valgo.Int(cfg.Browser.Queue, "browser.queue").GreaterThan(0),
		valgo.Int64(cfg.Browser.Timeout, "browser.timeout").GreaterThan(0),
		valgo.String(cfg.Page.Scroller, "page.scroller").Not().Blank(),
		valgo.String(cfg.Page.Clickable, "page.clickable").Not().Blank(),
		valgo.String(cfg.Log.Level, "log.level").InSlice([]string{"debug", "info", "warn", "error"}),
	)

	if !val.Valid() {
		return errors.ErrInvalidConfig.WithMessagef("%s", describe(val))
	}

	for i, alias := range cfg.Keys.Aliases {
		aliasVal := valgo.Is(
			valgo.String(alias.Key, "keys.aliases.key").Not().Blank(),
			valgo.String(alias.Name, "keys.aliases.name").Not().Blank(),
		)

		if !aliasVal.Valid() {
			return errors.ErrInvalidConfig.WithMessagef("alias %d: %s", i, describe(aliasVal))
		}
	}

	return nil
}

// describe lists each invalid field with its messages.
func describe(val *valgo.Validation) string {
	fields := make([]string, 0)

	for name, value := range val.ToValgoError().Errors() {
		fields = append(fields, name+": "+strings.Join(value.Messages(), ", "))
	}

	slices.Sort(fields)
	return strings.Join(fields, "; ")
}

/*
AliasMap returns the aliases keyed by terminal key name. Later entries win.
*/
func (cfg *Config) AliasMap() map[string]string {
	aliases := make(map[string]string, len(cfg.Keys.Aliases))

	for _, alias := range cfg.Keys.Aliases {
		aliases[alias.Key] = alias.Name
	}

	return aliases
}
