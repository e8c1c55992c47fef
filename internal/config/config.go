// Copyright © 2024 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config reads the YAML configuration consumed by the transformer
// and encoder CLIs: the partition window size, the gate-budget search range,
// and how to invoke the external QBF solver.
package config

import (
	"errors"
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// Defaults match spec.md §6: window size 7, ℓ range 1..5.
const (
	DefaultWindowSize = 7
	DefaultEllMin     = 1
	DefaultEllMax     = 5
)

// ErrInvalidRange is returned if EllMin > EllMax or either bound is non-positive.
var ErrInvalidRange = errors.New("config: invalid ell range")

// ErrInvalidWindowSize is returned if WindowSize < 1.
var ErrInvalidWindowSize = errors.New("config: window size must be at least 1")

// Config is the on-disk shape of the YAML config file accepted by both CLIs.
type Config struct {
	WindowSize int      `yaml:"windowSize"`
	EllMin     int      `yaml:"ellMin"`
	EllMax     int      `yaml:"ellMax"`
	SolverPath string   `yaml:"solverPath"`
	SolverArgs []string `yaml:"solverArgs"`
}

// Default returns the compile-time defaults of spec.md §6, with no solver
// configured (callers must supply one for the encoder to run end to end).
func Default() *Config {
	return &Config{
		WindowSize: DefaultWindowSize,
		EllMin:     DefaultEllMin,
		EllMax:     DefaultEllMax,
	}
}

// Load reads and validates a YAML config file at path.
func Load(path string) (*Config, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the structural invariants the rest of the pipeline relies on.
func (c *Config) Validate() error {
	if c.WindowSize < 1 {
		return ErrInvalidWindowSize
	}
	if c.EllMin < 1 || c.EllMax < c.EllMin {
		return ErrInvalidRange
	}
	return nil
}
