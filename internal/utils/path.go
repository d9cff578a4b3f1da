package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver finds the corpus directory for the wordrank binary
type PathResolver struct {
	executableDir string
	configDir     string
	extensions    []string
}

// NewPathResolver creates a resolver that accepts directories holding at
// least one file with one of exts.
func NewPathResolver(exts []string) (*PathResolver, error) {
	execDir, err := GetExecutableDir()
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: execDir,
		configDir:     getConfigDir(homeDir),
		extensions:    exts,
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", execDir, pr.configDir)
	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "wordrank")
		}
		return filepath.Join(homeDir, ".config", "wordrank")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "wordrank")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "wordrank")
	default:
		return filepath.Join(homeDir, ".config", "wordrank")
	}
}

// GetCorpusDir resolves the directory with corpus files.
// Candidates, in order:
// 1. userSpecifiedPath as given (absolute or relative to cwd)
// 2. userSpecifiedPath relative to the executable
// 3. data/ next to the executable, its parent, and the config dir
// Falls back to the executable relative path when nothing matches.
func (pr *PathResolver) GetCorpusDir(userSpecifiedPath string) string {
	candidates := pr.candidates(userSpecifiedPath)
	for _, path := range candidates {
		if pr.isCorpusDir(path) {
			log.Debugf("Found corpus directory: %s", path)
			return path
		}
		log.Debugf("Corpus directory candidate not valid: %s", path)
	}
	return filepath.Join(pr.executableDir, userSpecifiedPath)
}

func (pr *PathResolver) candidates(userSpecifiedPath string) []string {
	var paths []string
	if userSpecifiedPath != "" {
		if filepath.IsAbs(userSpecifiedPath) {
			paths = append(paths, userSpecifiedPath)
		} else {
			if cwd, err := os.Getwd(); err == nil {
				paths = append(paths, filepath.Join(cwd, userSpecifiedPath))
			}
			paths = append(paths, filepath.Join(pr.executableDir, userSpecifiedPath))
		}
	}
	return append(paths,
		filepath.Join(pr.executableDir, "data"),
		filepath.Join(filepath.Dir(pr.executableDir), "data"),
		filepath.Join(pr.configDir, "data"),
	)
}

// isCorpusDir checks if a directory contains at least one corpus file
func (pr *PathResolver) isCorpusDir(path string) bool {
	if stat, err := os.Stat(path); err != nil || !stat.IsDir() {
		return false
	}
	files, err := ListFiles(path, pr.extensions)
	return err == nil && len(files) > 0
}
