package internal

import (
	"fmt"

	"github.com/spf13/viper"

	"rowstore/internal/record"
)

type RowstoreConfig struct {
	AppName string `mapstructure:"app_name"`

	Storage struct {
		PageSize     int    `mapstructure:"page_size"`
		MaxStringLen int    `mapstructure:"max_string_len"`
		Codec        string `mapstructure:"codec"`
		// RowsPerPage overrides the floor-division default when > 0.
		RowsPerPage int `mapstructure:"rows_per_page"`
	} `mapstructure:"storage"`

	Cache struct {
		// Rows is the decoded-row cache capacity; 0 disables it.
		Rows int `mapstructure:"rows"`
	} `mapstructure:"cache"`

	Repl struct {
		HistoryFile string `mapstructure:"history_file"`
		Debug       bool   `mapstructure:"debug"`
	} `mapstructure:"repl"`
}

// LoadConfig reads an optional YAML config file. An empty path means
// defaults only.
func LoadConfig(path string) (*RowstoreConfig, error) {
	v := viper.New()
	v.SetDefault("app_name", "rowstore")
	v.SetDefault("storage.page_size", 4096)
	v.SetDefault("storage.max_string_len", 100)
	v.SetDefault("storage.codec", "fixed")
	v.SetDefault("storage.rows_per_page", 0)
	v.SetDefault("cache.rows", 1024)
	v.SetDefault("repl.history_file", "")
	v.SetDefault("repl.debug", false)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg RowstoreConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// BuildCodec constructs the row codec named by storage.codec.
func (c *RowstoreConfig) BuildCodec() (record.Codec, error) {
	if c.Storage.MaxStringLen <= 0 {
		return nil, fmt.Errorf("config: max_string_len must be > 0, got %d", c.Storage.MaxStringLen)
	}
	switch c.Storage.Codec {
	case "fixed":
		return record.NewFixedCodec(c.Storage.MaxStringLen), nil
	case "prefix":
		return record.NewPrefixCodec(c.Storage.MaxStringLen), nil
	default:
		return nil, fmt.Errorf("config: unknown codec %q (want fixed or prefix)", c.Storage.Codec)
	}
}
