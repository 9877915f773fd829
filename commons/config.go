// SPDX-License-Identifier: GPL-3.0-only

package commons

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"

	DataSourceFile = "file"
	DataSourceDB   = "db"
)

type Config struct {
	Transport        string
	Port             string
	DataSource       string
	DataFile         string
	OverwriteFile    string
	StrictValidation bool
	Debug            bool
	MigrateDB        bool
}

// LoadConfig reads the environment and lets command line flags override it.
func LoadConfig(args []string) (Config, error) {
	cfg := Config{
		Transport:     strings.ToLower(GetEnv("TRANSPORT", TransportStdio)),
		Port:          GetEnv("PORT", ":8080"),
		DataSource:    strings.ToLower(GetEnv("DATA_SOURCE", DataSourceFile)),
		DataFile:      GetEnv("DATA_FILE"),
		OverwriteFile: GetEnv("DATA_OVERWRITE_FILE"),
		Debug:         slices.Contains(args, "--debug"),
		MigrateDB:     slices.Contains(args, "--migrate-db"),
	}

	if v := GetEnv("STRICT_VALIDATION"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid STRICT_VALIDATION %q: %w", v, err)
		}
		cfg.StrictValidation = strict
	}

	if v := FlagValue(args, "--transport"); v != "" {
		cfg.Transport = strings.ToLower(v)
	}
	if v := FlagValue(args, "--port"); v != "" {
		cfg.Port = v
	}
	if v := FlagValue(args, "--data-source"); v != "" {
		cfg.DataSource = strings.ToLower(v)
	}
	if v := FlagValue(args, "--data-file"); v != "" {
		cfg.DataFile = v
	}
	if v := FlagValue(args, "--overwrite-file"); v != "" {
		cfg.OverwriteFile = v
	}

	if cfg.Port[0] != ':' && !strings.Contains(cfg.Port, ":") {
		cfg.Port = ":" + cfg.Port
	}

	switch cfg.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return Config{}, fmt.Errorf("invalid transport %q: must be 'stdio' or 'http'", cfg.Transport)
	}
	switch cfg.DataSource {
	case DataSourceFile, DataSourceDB:
	default:
		return Config{}, fmt.Errorf("invalid data source %q: must be 'file' or 'db'", cfg.DataSource)
	}
	return cfg, nil
}
