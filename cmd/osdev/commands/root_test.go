package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// executeCommand executes the root command and returns combined output.
// executeCommand 执行根命令并返回合并后的输出。
func executeCommand(args ...string) (string, error) {
	// Reset flag state so tests stay order-independent
	// 重置标志状态，保证测试顺序无关
	leaksFilter = ""

	buf := new(bytes.Buffer)
	RootCmd.SetOut(buf)
	RootCmd.SetErr(buf)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return buf.String(), err
}

// TestRootCommandHelp tests root command help output.
// TestRootCommandHelp 测试根命令帮助输出。
func TestRootCommandHelp(t *testing.T) {
	output, err := executeCommand("--help")
	assert.NoError(t, err)
	assert.Contains(t, output, "osdev")
	assert.Contains(t, output, "Usage:")
	assert.Contains(t, output, "Available Commands:")
	assert.Contains(t, output, "leaks")
	assert.Contains(t, output, "toolchain")
}

// TestInvalidCommand tests unknown command handling.
// TestInvalidCommand 测试无效命令处理。
func TestInvalidCommand(t *testing.T) {
	_, err := executeCommand("no-such-command")
	assert.Error(t, err)
}

// TestVersionCommand tests version output.
// TestVersionCommand 测试版本输出。
func TestVersionCommand(t *testing.T) {
	output, err := executeCommand("version")
	assert.NoError(t, err)
	assert.Contains(t, output, "osdev")
}
