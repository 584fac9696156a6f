package toolchain

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	gccVersion = "4.8.1"
	gccSource  = "http://ftp.gnu.org/gnu/gcc/gcc-" + gccVersion + "/gcc-" + gccVersion + ".tar.bz2"
)

// GCCComponent builds the GCC cross-compiler for the configured target.
// It depends on binutils being installed into the same prefix first.
// GCCComponent 为配置的目标构建 GCC 交叉编译器，依赖先安装到同一前缀的 binutils。
type GCCComponent struct{}

func (GCCComponent) Name() string    { return "gcc" }
func (GCCComponent) Version() string { return gccVersion }

func (GCCComponent) Sources() []string {
	return []string{gccSource}
}

func (GCCComponent) Patches() []Patch { return nil }

// Build configures gcc out of tree and runs the staged cross build: the
// compiler proper first, then the target runtime libraries, then a staged
// install. Shared libraries are disabled since the target has no dynamic
// linker at this point.
func (c GCCComponent) Build(ctx BuildContext) error {
	srcdir := filepath.Join(ctx.BuildDir, fmt.Sprintf("gcc-%s", c.Version()))
	objdir := filepath.Join(ctx.BuildDir, "gcc-build")
	if err := os.MkdirAll(objdir, 0755); err != nil {
		return err
	}

	configure := fmt.Sprintf("%s/configure --prefix=%s --target=%s "+
		"--enable-languages=c,c++ --disable-libstdcxx-pch --disable-shared",
		srcdir, ctx.DestDir, ctx.Target)
	if err := ctx.Runner.Run(configure, objdir); err != nil {
		return err
	}
	if err := ctx.Runner.Run(fmt.Sprintf("make -j%d all-gcc", ctx.MakeJobs), objdir); err != nil {
		return err
	}
	if err := ctx.Runner.Run(fmt.Sprintf("make -j%d all-target-libgcc all-target-libstdc++-v3", ctx.MakeJobs), objdir); err != nil {
		return err
	}
	return ctx.Runner.Run("make install-gcc install-target-libgcc install-target-libstdc++-v3", objdir)
}
