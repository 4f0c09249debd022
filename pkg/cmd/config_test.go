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
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/go-regc/pkg/regc/compiler/codegen"
	"github.com/consensys/go-regc/pkg/util/assert"
	"github.com/spf13/cobra"
)

func Test_Config_01(t *testing.T) {
	config := DefaultConfig()
	//
	assert.Equal(t, uint(codegen.DEFAULT_REGISTERS), config.Compiler.Registers)
	assert.False(t, config.Compiler.Reclaim)
	assert.Equal(t, "", config.Output.File)
	assert.NoError(t, config.Validate())
}

func Test_Config_02(t *testing.T) {
	filename := writeConfig(t, "[compiler]\nregisters = 8\nreclaim = true\n\n[output]\nfile = \"out.asm\"\n")
	//
	config, err := LoadConfig(filename)
	//
	assert.NoError(t, err)
	assert.Equal(t, uint(8), config.Compiler.Registers)
	assert.True(t, config.Compiler.Reclaim)
	assert.Equal(t, "out.asm", config.Output.File)
}

func Test_Config_03(t *testing.T) {
	// Absent settings take default values
	filename := writeConfig(t, "[output]\nfile = \"a.asm\"\n")
	//
	config, err := LoadConfig(filename)
	//
	assert.NoError(t, err)
	assert.Equal(t, uint(codegen.DEFAULT_REGISTERS), config.Compiler.Registers)
	assert.False(t, config.Compiler.Reclaim)
}

func Test_Config_04(t *testing.T) {
	filename := writeConfig(t, "[compiler]\nregisters = 257\n")
	//
	_, err := LoadConfig(filename)
	//
	assert.True(t, err != nil)
}

func Test_Config_05(t *testing.T) {
	filename := writeConfig(t, "[compiler\nregisters = ")
	//
	_, err := LoadConfig(filename)
	//
	assert.True(t, err != nil)
}

func Test_Config_06(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	//
	assert.True(t, os.IsNotExist(err))
}

func Test_ResolveConfig_01(t *testing.T) {
	cmd := newTestCommand()
	//
	config, err := ResolveConfig(cmd)
	//
	assert.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func Test_ResolveConfig_02(t *testing.T) {
	// Explicit flags override the file
	filename := writeConfig(t, "[compiler]\nregisters = 8\nreclaim = true\n")
	cmd := newTestCommand()
	//
	setFlag(t, cmd, "config", filename)
	setFlag(t, cmd, "registers", "4")
	//
	config, err := ResolveConfig(cmd)
	//
	assert.NoError(t, err)
	assert.Equal(t, uint(4), config.Compiler.Registers)
	assert.True(t, config.Compiler.Reclaim)
}

func Test_ResolveConfig_03(t *testing.T) {
	// Defaulted flags do not override the file
	filename := writeConfig(t, "[compiler]\nregisters = 8\n[output]\nfile = \"x.asm\"\n")
	cmd := newTestCommand()
	//
	setFlag(t, cmd, "config", filename)
	//
	config, err := ResolveConfig(cmd)
	//
	assert.NoError(t, err)
	assert.Equal(t, uint(8), config.Compiler.Registers)
	assert.Equal(t, "x.asm", config.Output.File)
}

func Test_ResolveConfig_04(t *testing.T) {
	cmd := newTestCommand()
	//
	setFlag(t, cmd, "registers", "0")
	//
	_, err := ResolveConfig(cmd)
	//
	assert.True(t, err != nil)
}

// ===================================================================
// Test Helpers
// ===================================================================

func newTestCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", "", "")
	addCompileFlags(cmd)
	//
	return cmd
}

func setFlag(t *testing.T, cmd *cobra.Command, flag string, value string) {
	t.Helper()
	//
	if err := cmd.Flags().Set(flag, value); err != nil {
		t.Fatal(err)
	}
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	//
	filename := filepath.Join(t.TempDir(), "regc.toml")
	//
	if err := os.WriteFile(filename, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	//
	return filename
}
