package toolchain

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	binutilsVersion = "2.23.1"
	binutilsSource  = "http://ftp.gnu.org/gnu/binutils/binutils-" + binutilsVersion + ".tar.bz2"
)

// BinutilsComponent builds GNU binutils (assembler, linker and friends)
// for the configured target triple.
// BinutilsComponent 为配置的目标三元组构建 GNU binutils。
type BinutilsComponent struct{}

func (BinutilsComponent) Name() string    { return "binutils" }
func (BinutilsComponent) Version() string { return binutilsVersion }

func (BinutilsComponent) Sources() []string {
	return []string{binutilsSource}
}

func (BinutilsComponent) Patches() []Patch { return nil }

// Build configures binutils out of tree, compiles it and installs it into
// the destination prefix. Werror is disabled so that newer host compilers
// do not fail the historic release on new warnings.
func (c BinutilsComponent) Build(ctx BuildContext) error {
	srcdir := filepath.Join(ctx.BuildDir, fmt.Sprintf("binutils-%s", c.Version()))
	objdir := filepath.Join(ctx.BuildDir, "binutils-build")
	if err := os.MkdirAll(objdir, 0755); err != nil {
		return err
	}

	configure := fmt.Sprintf("%s/configure --prefix=%s --target=%s --disable-werror",
		srcdir, ctx.DestDir, ctx.Target)
	if err := ctx.Runner.Run(configure, objdir); err != nil {
		return err
	}
	if err := ctx.Runner.Run(fmt.Sprintf("make -j%d", ctx.MakeJobs), objdir); err != nil {
		return err
	}
	return ctx.Runner.Run("make install", objdir)
}
