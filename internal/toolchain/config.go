// Package toolchain builds cross-compilation toolchain components from
// source tarballs inside a managed workspace directory.
//
// A component declares its sources, patches and build recipe; the manager
// decides which components are stale, fetches and unpacks their sources,
// applies patches and drives the configure/make/install steps through a
// Runner. All heavy lifting (wget, tar, patch, make) happens in child
// processes, exactly like the build scripts this replaces.
package toolchain

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/nebula-os/devtools/internal/utils/logger"
	pkgerrors "github.com/nebula-os/devtools/pkg/errors"
)

// Config controls where and how toolchain components are built.
// Config 控制工具链组件的构建位置和方式。
type Config struct {
	// Dir is the toolchain root. Downloaded tarballs land directly in it
	// and each target gets a subdirectory as its install prefix.
	Dir string `yaml:"dir" env:"TOOLCHAIN_DIR"`
	// Target is the cross-compilation target triple, e.g. x86_64-elf.
	Target string `yaml:"target" env:"TOOLCHAIN_TARGET"`
	// MakeJobs is the -j value passed to make.
	MakeJobs int `yaml:"make_jobs" env:"TOOLCHAIN_MAKE_JOBS"`
	// PatchDir holds per-component patch directories. Empty means no
	// patches are available locally.
	PatchDir string `yaml:"patch_dir" env:"TOOLCHAIN_PATCH_DIR"`

	Logging logger.LoggingConfig `yaml:"logging"`
}

// LoadConfig reads the YAML config file (if path is non-empty) and applies
// environment overrides on top. Validation is left to the caller since
// some commands only need the logging section.
// LoadConfig 读取 YAML 配置文件并在其上应用环境变量覆盖。
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{MakeJobs: 1}

	if path != "" {
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", pkgerrors.ErrConfigNotFound, path)
		}
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, pkgerrors.NewConfigError("yaml", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, pkgerrors.NewConfigError("env", err)
	}
	return cfg, nil
}

// Validate checks the fields required for building.
func (c *Config) Validate() error {
	if c.Dir == "" {
		return pkgerrors.NewConfigError("dir", c.Dir)
	}
	if c.Target == "" {
		return pkgerrors.NewConfigError("target", c.Target)
	}
	if c.MakeJobs < 1 {
		return pkgerrors.NewConfigError("make_jobs", c.MakeJobs)
	}
	return nil
}
