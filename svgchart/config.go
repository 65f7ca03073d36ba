// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aclements/go-svgchart/chart"
	"github.com/spf13/viper"
)

// config is the contents of a chart configuration file.
type config struct {
	Output  string       `mapstructure:"output"`
	Verbose bool         `mapstructure:"verbose"`
	Charts  []chart.Spec `mapstructure:"charts"`

	// dir is the directory of the configuration file. Data paths
	// are relative to it.
	dir string
}

// loadConfig reads the configuration file at path, or searches for
// charts.yaml if path is empty.
func loadConfig(v *viper.Viper, path string) (*config, error) {
	v.SetDefault("output", ".")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("charts")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".svgchart"))
		}
	}
	v.SetEnvPrefix("SVGCHART")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, errors.New("no charts.yaml found; use -c to name a configuration file")
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", v.ConfigFileUsed(), err)
	}
	cfg.dir = filepath.Dir(v.ConfigFileUsed())

	seen := make(map[string]bool)
	for i := range cfg.Charts {
		spec := &cfg.Charts[i]
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", v.ConfigFileUsed(), err)
		}
		if seen[spec.Name] {
			return nil, fmt.Errorf("%s: duplicate chart %q", v.ConfigFileUsed(), spec.Name)
		}
		seen[spec.Name] = true
	}
	return &cfg, nil
}

// selectCharts returns the charts of cfg named by names, or all
// charts if names is empty.
func (cfg *config) selectCharts(names []string) ([]chart.Spec, error) {
	if len(names) == 0 {
		return cfg.Charts, nil
	}
	var specs []chart.Spec
	for _, name := range names {
		found := false
		for _, spec := range cfg.Charts {
			if spec.Name == name {
				specs = append(specs, spec)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("no chart named %q", name)
		}
	}
	return specs, nil
}
