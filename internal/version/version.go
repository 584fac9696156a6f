// Package version holds build-time version metadata.
// Package version 保存构建时的版本元数据。
package version

// Version is the osdev release string. Overridden at build time via
// -ldflags "-X github.com/nebula-os/devtools/internal/version.Version=...".
var Version = "0.2.0"
