package toolchain

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	pkgerrors "github.com/nebula-os/devtools/pkg/errors"
)

// Patch describes one patch applied to an unpacked source tree.
type Patch struct {
	// File is the patch file name under the component's patch directory.
	File string
	// Dir is the directory to apply the patch in, relative to the build
	// scratch directory.
	Dir string
	// Strip is the -p level handed to patch.
	Strip int
}

// Component is a declarative description of one toolchain component.
// Component 是一个工具链组件的声明式描述。
type Component interface {
	Name() string
	Version() string
	// Sources are tarball URLs fetched into the download directory.
	Sources() []string
	// Patches are applied after unpacking, in order.
	Patches() []Patch
	// Build runs the component's configure/compile/install steps. The
	// sources are already unpacked and patched under ctx.BuildDir.
	Build(ctx BuildContext) error
}

// BuildContext carries the paths and settings a component build runs with.
type BuildContext struct {
	Runner      Runner
	Target      string
	MakeJobs    int
	DestDir     string // install prefix
	BuildDir    string // scratch directory, removed after the build
	DownloadDir string // where source tarballs are cached
	PatchDir    string // root of per-component patch directories
}

// stampPath is the marker recording that a component version is installed.
func stampPath(destDir string, c Component) string {
	return filepath.Join(destDir, fmt.Sprintf(".%s-%s-installed", c.Name(), c.Version()))
}

// stale reports whether the component needs building: its stamp file is
// missing, or one of its patches is newer than the stamp.
// stale 判断组件是否需要重新构建：标记文件缺失，或某个补丁比标记更新。
func stale(c Component, destDir, patchDir string) (bool, error) {
	info, err := os.Stat(stampPath(destDir, c))
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	for _, p := range c.Patches() {
		pinfo, err := os.Stat(filepath.Join(patchDir, c.Name(), p.File))
		if err != nil {
			return false, pkgerrors.NewPatchError(p.File, err)
		}
		if pinfo.ModTime().After(info.ModTime()) {
			return true, nil
		}
	}
	return false, nil
}

// download fetches every missing source tarball into the download cache
// and unpacks the tarballs into the build directory. Fetching goes through
// wget in a child process; a .part file is renamed into place only once
// the download completed, so interrupted fetches resume cleanly.
func download(ctx BuildContext, c Component) error {
	for _, source := range c.Sources() {
		u, err := url.Parse(source)
		if err != nil {
			return fmt.Errorf("bad source URL %q: %w", source, err)
		}
		name := path.Base(u.Path)
		target := filepath.Join(ctx.DownloadDir, name)

		if _, err := os.Stat(target); os.IsNotExist(err) {
			fetch := fmt.Sprintf("wget -c -O %s %s", target+".part", source)
			if err := ctx.Runner.Run(fetch, ctx.DownloadDir); err != nil {
				return err
			}
			if err := os.Rename(target+".part", target); err != nil {
				return err
			}
		}

		if err := unpack(ctx, target); err != nil {
			return err
		}
	}
	return nil
}

// unpack extracts a cached tarball into the build directory. Files that
// are not tarballs are left alone; the build recipe knows where to find
// them in the cache.
func unpack(ctx BuildContext, target string) error {
	switch {
	case strings.HasSuffix(target, ".tar.bz2"):
		return ctx.Runner.Run(fmt.Sprintf("tar -C %s -xjf %s", ctx.BuildDir, target), ctx.DownloadDir)
	case strings.HasSuffix(target, ".tar.gz"):
		return ctx.Runner.Run(fmt.Sprintf("tar -C %s -xzf %s", ctx.BuildDir, target), ctx.DownloadDir)
	}
	return nil
}

// applyPatches applies the component's patches inside the build directory.
func applyPatches(ctx BuildContext, c Component) error {
	for _, p := range c.Patches() {
		file := filepath.Join(ctx.PatchDir, c.Name(), p.File)
		cmd := fmt.Sprintf("patch -Np%d -i %s", p.Strip, file)
		if err := ctx.Runner.Run(cmd, filepath.Join(ctx.BuildDir, p.Dir)); err != nil {
			return err
		}
	}
	return nil
}
