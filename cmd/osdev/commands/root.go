// Package commands wires up the osdev command-line interface.
// Package commands 组装 osdev 命令行接口。
package commands

import (
	"github.com/spf13/cobra"

	"github.com/nebula-os/devtools/internal/toolchain"
	"github.com/nebula-os/devtools/internal/utils/logger"
)

// ConfigPath is the --config value shared by all subcommands.
// ConfigPath 是所有子命令共享的 --config 值。
var ConfigPath string

var RootCmd = &cobra.Command{
	Use:   "osdev",
	Short: "Auxiliary tools for the Nebula OS build and debug workflow",
	Long: `osdev bundles the small utilities used while developing Nebula OS:
a slab allocation leak reporter for kernel logs and a cross-toolchain
build driver.
osdev 打包了开发 Nebula OS 时使用的小工具：
内核日志 slab 分配泄漏报告器和交叉工具链构建驱动。`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Pick up logging settings from the config file when present;
		// otherwise log to stderr at info level.
		// 如果存在配置文件则读取日志设置，否则以 info 级别输出到 stderr。
		cfg, err := toolchain.LoadConfig(ConfigPath)
		if err != nil || cfg == nil {
			logger.Init(logger.LoggingConfig{Level: "info"})
		} else {
			logger.Init(cfg.Logging)
		}

		ctx := logger.WithContext(cmd.Context(), logger.Get(nil))
		cmd.SetContext(ctx)
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&ConfigPath, "config", "c", "", "Path to configuration file")

	RootCmd.AddCommand(LeaksCmd)
	RootCmd.AddCommand(ToolchainCmd)
	RootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}
