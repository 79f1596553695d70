// Package layout defines the fixed set of paths the installer manages.
package layout

import (
	"path/filepath"
	"strings"
)

// Runtime locations. These are the paths hbai-mon sees once installed and
// are the values written into the symlink and the logrotate policy.
const (
	ConfigDir       = "/etc/hbai-mon"
	MainExecutable  = "hbai-mon.py"
	OllamaModule    = "hbai_ollama.py"
	ExecutorModule  = "hbai_executor.py"
	CredentialsFile = ".credentials"
	AuditLogFile    = "audit.log"
	SymlinkPath     = "/usr/local/bin/hbai-mon"
	LogrotatePath   = "/etc/logrotate.d/hbai-mon"
)

// Permission bits applied by the installer.
const (
	ConfigDirMode   = 0o700
	CredentialsMode = 0o600
	ExecuteBits     = 0o111
	LogrotateMode   = 0o644
)

// Layout holds the logical paths of an installation and the staging root
// they are written under. Root is "" or "/" for a live install.
type Layout struct {
	Root            string
	ConfigDir       string
	Executables     []string
	CredentialsPath string
	AuditLogPath    string
	SymlinkPath     string
	SymlinkTarget   string
	LogrotatePath   string
}

// Default returns the standard layout staged under root.
func Default(root string) Layout {
	return Layout{
		Root:      normalizeRoot(root),
		ConfigDir: ConfigDir,
		Executables: []string{
			filepath.Join(ConfigDir, MainExecutable),
			filepath.Join(ConfigDir, OllamaModule),
			filepath.Join(ConfigDir, ExecutorModule),
		},
		CredentialsPath: filepath.Join(ConfigDir, CredentialsFile),
		AuditLogPath:    filepath.Join(ConfigDir, AuditLogFile),
		SymlinkPath:     SymlinkPath,
		SymlinkTarget:   filepath.Join(ConfigDir, MainExecutable),
		LogrotatePath:   LogrotatePath,
	}
}

// Physical maps a logical path to the path that is actually touched on disk.
func (l Layout) Physical(logical string) string {
	if l.Root == "" {
		return filepath.Clean(logical)
	}
	return filepath.Join(l.Root, strings.TrimPrefix(filepath.Clean(logical), string(filepath.Separator)))
}

// Staged reports whether writes are redirected under a staging root.
func (l Layout) Staged() bool {
	return l.Root != ""
}

// normalizeRoot collapses "/" and blank roots to "" so live installs and
// staged installs share one code path.
func normalizeRoot(root string) string {
	trimmed := strings.TrimSpace(root)
	if trimmed == "" {
		return ""
	}
	cleaned := filepath.Clean(trimmed)
	if cleaned == string(filepath.Separator) {
		return ""
	}
	return cleaned
}
