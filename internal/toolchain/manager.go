package toolchain

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"go.uber.org/zap"

	"github.com/nebula-os/devtools/internal/utils/logger"
	pkgerrors "github.com/nebula-os/devtools/pkg/errors"
)

// Manager owns the toolchain workspace and decides which components need
// rebuilding.
// Manager 管理工具链工作区并决定哪些组件需要重新构建。
//
// Workspace layout, matching the historic build scripts:
//
//	<dir>/                        download cache
//	<dir>/<target>/               install prefix (dest dir)
//	<dir>/<target>/build-tmp/     scratch dir, removed after every build
//	<dir>/<target>/.<name>-<version>-installed   stamp files
type Manager struct {
	cfg    *Config
	runner Runner
	log    *zap.SugaredLogger

	// components in dependency order.
	components []Component
}

// ComponentStatus pairs a component with its staleness.
type ComponentStatus struct {
	Name    string
	Version string
	Stale   bool
}

// NewManager returns a manager for the configured workspace.
func NewManager(cfg *Config, runner Runner) *Manager {
	return &Manager{
		cfg:    cfg,
		runner: runner,
		log:    logger.Get(nil),
		components: []Component{
			BinutilsComponent{},
			GCCComponent{},
		},
	}
}

// DestDir is the install prefix for the configured target.
func (m *Manager) DestDir() string {
	return filepath.Join(m.cfg.Dir, m.cfg.Target)
}

func (m *Manager) buildDir() string {
	return filepath.Join(m.DestDir(), "build-tmp")
}

// Status reports staleness for every known component.
func (m *Manager) Status() ([]ComponentStatus, error) {
	statuses := make([]ComponentStatus, 0, len(m.components))
	for _, c := range m.components {
		needs, err := stale(c, m.DestDir(), m.cfg.PatchDir)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, ComponentStatus{
			Name:    c.Name(),
			Version: c.Version(),
			Stale:   needs,
		})
	}
	return statuses, nil
}

// pick resolves component names to components, preserving dependency
// order regardless of argument order. No names selects everything.
func (m *Manager) pick(names []string) ([]Component, error) {
	if len(names) == 0 {
		return m.components, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	selected := make([]Component, 0, len(names))
	for _, c := range m.components {
		if wanted[c.Name()] {
			selected = append(selected, c)
			delete(wanted, c.Name())
		}
	}
	for _, name := range names {
		if wanted[name] {
			return nil, pkgerrors.NewComponentError(name)
		}
	}
	return selected, nil
}

// Update builds the stale components among the named ones (all components
// when no names are given) under an exclusive workspace lock. A second
// build racing on the same target fails fast instead of corrupting the
// prefix.
// Update 在独占工作区锁下构建指定（或全部）过期组件。
func (m *Manager) Update(names ...string) error {
	selected, err := m.pick(names)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(m.DestDir(), 0755); err != nil {
		return err
	}

	lock := flock.New(filepath.Join(m.DestDir(), ".lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return err
	}
	if !locked {
		return pkgerrors.ErrLockHeld
	}
	defer lock.Unlock()

	pending := make([]Component, 0, len(selected))
	for _, c := range selected {
		needs, err := stale(c, m.DestDir(), m.cfg.PatchDir)
		if err != nil {
			return err
		}
		if needs {
			pending = append(pending, c)
		}
	}
	if len(pending) == 0 {
		m.log.Infof("toolchain for %s is up to date", m.cfg.Target)
		return nil
	}

	start := time.Now()
	for _, c := range pending {
		if err := m.buildComponent(c); err != nil {
			return err
		}
	}
	m.log.Infof("toolchain for %s updated in %s", m.cfg.Target, time.Since(start).Round(time.Second))
	return nil
}

// buildComponent runs one component through download, patch and build in a
// fresh scratch directory, then writes its stamp. The scratch directory is
// removed on every exit path.
func (m *Manager) buildComponent(c Component) error {
	m.log.Infof("building toolchain component %s %s", c.Name(), c.Version())

	if err := os.MkdirAll(m.buildDir(), 0755); err != nil {
		return err
	}
	defer os.RemoveAll(m.buildDir())

	ctx := BuildContext{
		Runner:      m.runner,
		Target:      m.cfg.Target,
		MakeJobs:    m.cfg.MakeJobs,
		DestDir:     m.DestDir(),
		BuildDir:    m.buildDir(),
		DownloadDir: m.cfg.Dir,
		PatchDir:    m.cfg.PatchDir,
	}

	if err := download(ctx, c); err != nil {
		return err
	}
	if err := applyPatches(ctx, c); err != nil {
		return err
	}
	if err := c.Build(ctx); err != nil {
		return err
	}

	return os.WriteFile(stampPath(m.DestDir(), c), nil, 0644)
}
