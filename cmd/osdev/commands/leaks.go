package commands

import (
	"github.com/spf13/cobra"

	"github.com/nebula-os/devtools/internal/slab"
)

var leaksFilter string

// LeaksCmd implements the 'leaks' command.
// LeaksCmd 实现 'leaks' 命令。
var LeaksCmd = &cobra.Command{
	Use:   "leaks <log-file>",
	Short: "Report slab allocations never freed in a kernel log",
	Long: `Replays the slab allocate/free trace lines of a kernel log and prints a
table of every allocation still live at end of file, i.e. a likely leak.
Lines that are not slab trace events are skipped.
回放内核日志中的 slab 分配/释放事件，打印文件结束时仍然存活的分配
（即疑似泄漏）。非 slab 事件的行会被跳过。`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger, err := slab.BuildFromFile(args[0])
		if err != nil {
			return err
		}

		entries := ledger.Live()
		if leaksFilter != "" {
			filter, err := slab.CompileFilter(leaksFilter)
			if err != nil {
				return err
			}
			entries, err = filter.Apply(entries)
			if err != nil {
				return err
			}
		}

		slab.WriteReport(cmd.OutOrStdout(), entries)
		return nil
	},
}

func init() {
	LeaksCmd.Flags().StringVar(&leaksFilter, "filter", "", `Keep only survivors matching an expression, e.g. 'Cache == "kmalloc_64"'`)
}
