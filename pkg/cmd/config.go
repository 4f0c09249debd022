// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-regc/pkg/regc/compiler/codegen"
	"github.com/pelletier/go-toml"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Config captures the settings of a compilation, as read from a TOML file such
// as the following:
//
//	[compiler]
//	registers = 16
//	reclaim = true
//
//	[output]
//	file = "out.asm"
type Config struct {
	Compiler CompilerConfig `toml:"compiler"`
	Output   OutputConfig   `toml:"output"`
}

// CompilerConfig configures code generation.  A register count of zero selects
// the default.
type CompilerConfig struct {
	Registers uint `toml:"registers"`
	Reclaim   bool `toml:"reclaim"`
}

// OutputConfig determines where assembly is written.  An empty filename means
// standard output.
type OutputConfig struct {
	File string `toml:"file"`
}

// DefaultConfig returns the settings used in the absence of any configuration
// file or flags.
func DefaultConfig() Config {
	return Config{Compiler: CompilerConfig{Registers: codegen.DEFAULT_REGISTERS}}
}

// LoadConfig reads the configuration from a given TOML file.  Settings absent
// from the file take their default values.
func LoadConfig(filename string) (Config, error) {
	var config Config
	//
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	} else if err = toml.Unmarshal(bytes, &config); err != nil {
		return config, fmt.Errorf("%s: %w", filename, err)
	}
	//
	if config.Compiler.Registers == 0 {
		config.Compiler.Registers = codegen.DEFAULT_REGISTERS
	}
	//
	return config, config.Validate()
}

// Validate checks the settings are within range.
func (p *Config) Validate() error {
	if p.Compiler.Registers == 0 || p.Compiler.Registers > codegen.MAX_REGISTERS {
		return fmt.Errorf("invalid register count %d (must be between 1 and %d)",
			p.Compiler.Registers, codegen.MAX_REGISTERS)
	}
	//
	return nil
}

// Options returns the code generator options corresponding to this
// configuration.
func (p *Config) Options() []codegen.Option {
	return []codegen.Option{
		codegen.WithRegisters(p.Compiler.Registers),
		codegen.WithReclaim(p.Compiler.Reclaim),
	}
}

// ResolveConfig determines the configuration for a given command.  This starts
// from the configuration file (if given) or the defaults, and then applies any
// flags explicitly set on the command line.
func ResolveConfig(cmd *cobra.Command) (Config, error) {
	var (
		config   = DefaultConfig()
		filename = GetString(cmd, "config")
		flags    = cmd.Flags()
		err      error
	)
	//
	if filename != "" {
		log.Debugf("reading configuration from %s", filename)
		//
		if config, err = LoadConfig(filename); err != nil {
			return config, err
		}
	}
	// Flags override the file
	if flags.Changed("registers") {
		config.Compiler.Registers = GetUint(cmd, "registers")
	}
	//
	if flags.Changed("reclaim") {
		config.Compiler.Reclaim = GetFlag(cmd, "reclaim")
	}
	//
	if flags.Changed("output") {
		config.Output.File = GetString(cmd, "output")
	}
	//
	return config, config.Validate()
}
