package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nebula-os/devtools/internal/toolchain"
)

// ToolchainCmd groups the toolchain management commands.
// ToolchainCmd 聚合工具链管理命令。
var ToolchainCmd = &cobra.Command{
	Use:   "toolchain",
	Short: "Manage the cross-compilation toolchain",
	Long: `Build and inspect the cross-compilation toolchain components used to
compile the OS, driven by the toolchain section of the config file and
the TOOLCHAIN_* environment variables.
构建和检查用于编译操作系统的交叉工具链组件。`,
}

var toolchainBuildCmd = &cobra.Command{
	Use:   "build [component...]",
	Short: "Build stale toolchain components",
	Long: `Build the stale toolchain components, or only the named ones
(e.g. 'osdev toolchain build binutils'). Unknown names are rejected.
构建过期的工具链组件；可指定组件名，未知名称会被拒绝。`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := toolchain.LoadConfig(ConfigPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		manager := toolchain.NewManager(cfg, toolchain.NewShellRunner())
		return manager.Update(args...)
	},
}

var toolchainStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which toolchain components need building",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := toolchain.LoadConfig(ConfigPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		manager := toolchain.NewManager(cfg, toolchain.NewShellRunner())
		statuses, err := manager.Status()
		if err != nil {
			return err
		}

		for _, s := range statuses {
			state := "installed"
			if s.Stale {
				state = "stale"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", s.Name, s.Version, state)
		}
		return nil
	},
}

func init() {
	ToolchainCmd.AddCommand(toolchainBuildCmd)
	ToolchainCmd.AddCommand(toolchainStatusCmd)
}
