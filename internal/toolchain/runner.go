package toolchain

import (
	"io"
	"os"
	"os/exec"

	"github.com/nebula-os/devtools/internal/utils/logger"
	pkgerrors "github.com/nebula-os/devtools/pkg/errors"
)

// Runner executes a shell command inside a working directory. The build
// driver never retries; the first failing command aborts the build.
// Runner 在工作目录内执行 Shell 命令；首个失败的命令即中止构建。
type Runner interface {
	Run(command, dir string) error
}

// ShellRunner runs commands through bash with inherited stdio.
// ShellRunner 通过 bash 执行命令并继承标准输入输出。
type ShellRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewShellRunner returns a runner wired to the process stdio.
func NewShellRunner() *ShellRunner {
	return &ShellRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes command in dir. An empty dir means the current directory.
func (r *ShellRunner) Run(command, dir string) error {
	logger.Get(nil).Infof("+ %s", command)

	cmd := exec.Command("bash", "-c", command)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		return pkgerrors.NewCommandError(command, dir, err)
	}
	return nil
}
