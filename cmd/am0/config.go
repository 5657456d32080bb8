// This file is part of am0 - https://github.com/Deric-W/am0
//
// Copyright 2024 The am0 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const configName = ".am0.toml"

// Config holds the optional settings read from a TOML file.
type Config struct {
	Prompt  string `toml:"prompt"`
	History string `toml:"history"`
	Trace   bool   `toml:"trace"`
	Debug   bool   `toml:"debug"`
}

// loadConfig reads path, or ~/.am0.toml when path is empty. A missing default
// file yields the defaults, a missing explicit one is an error.
func loadConfig(path string) (*Config, error) {
	cfg := &Config{
		Prompt:  "AM0 >> ",
		History: defaultPath(".am0_history"),
	}
	explicit := path != ""
	if !explicit {
		path = defaultPath(configName)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, errors.Wrap(err, "read config failed")
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse error in %s", path)
	}
	return cfg, nil
}

func defaultPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, name)
}
