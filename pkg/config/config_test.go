package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		wantErr string
	}{
		{
			name: "valid config",
			config: `
package = "calc"
module_prefix = "example.com/gen"
schemas = ["calc.yml", "base.json"]

[imports]
shared = "example.com/shared"
`,
		},
		{
			name:   "empty config",
			config: ``,
		},
		{
			name:    "bad package name",
			config:  `package = "Calc-Pkg"`,
			wantErr: "package: must be a lower case Go package name",
		},
		{
			name:    "suffix that is not go",
			config:  `suffix = ".txt"`,
			wantErr: "suffix: must end in .go",
		},
		{
			name:    "trailing slash on the module prefix",
			config:  `module_prefix = "example.com/gen/"`,
			wantErr: "module_prefix: must be an import path without a trailing slash",
		},
		{
			name: "empty import path",
			config: `
[imports]
shared = ""
`,
			wantErr: "imports:",
		},
		{
			name:    "schema in an unknown format",
			config:  `schemas = ["calc.thrift"]`,
			wantErr: "unknown document format",
		},
		{
			name:    "unknown key",
			config:  `pakage = "calc"`,
			wantErr: "decoding thriftgen.toml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.config))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("can find the config in a parent directory", func(t *testing.T) {
		r := require.New(t)

		cfg, err := Load("testdata/nested/deeper")
		r.NoError(err)
		r.NotNil(cfg)

		abs, err := filepath.Abs("testdata")
		r.NoError(err)

		r.Equal(abs, cfg.Dir)
		r.Equal("calc", cfg.Package)
		r.Equal("example.com/shared", cfg.Imports["shared"])
		r.Equal([]string{filepath.Join(abs, "calc.yml"), "/abs/shared.yml"}, cfg.SchemaPaths())
		r.Equal(filepath.Join(abs, "gen", "calc_thrift.go"), cfg.OutputPath(filepath.Join(abs, "calc.yml"), "calc"))
		r.Len(cfg.Options(), 2)
	})

	t.Run("returns nothing when there is no config", func(t *testing.T) {
		r := require.New(t)

		cfg, err := Load(t.TempDir())
		r.NoError(err)
		r.Nil(cfg)

		r.Equal("/schemas/calc.gen.go", cfg.OutputPath("/schemas/calc.yml", "calc"))
		r.Empty(cfg.Options())
	})
}
