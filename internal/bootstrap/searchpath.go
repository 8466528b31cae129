// Package bootstrap resolves the project root for entry files that the hosting
// platform may invoke from an arbitrary working directory.
//
// The serverless runtime compiles and runs api/index.go with a working
// directory it chooses, so files that live next to the project root (.env,
// config.yml) cannot be found by relative path alone. EnsureProjectRoot records
// the root on a process-wide search path; Find consults the working directory
// first and then every search-path entry in order.
package bootstrap

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"sync"
)

// SearchPath is an ordered list of absolute directories used to resolve
// project files. It is safe for concurrent use.
type SearchPath struct {
	mu   sync.RWMutex
	dirs []string
}

// Default is the process-wide search path.
var Default = NewSearchPath()

// NewSearchPath creates an empty search path.
func NewSearchPath() *SearchPath {
	return &SearchPath{}
}

// EnsureFirst inserts dir at the front of the search path unless it is
// already present anywhere in it. It reports whether dir was inserted.
func (p *SearchPath) EnsureFirst(dir string) bool {
	dir = filepath.Clean(dir)

	p.mu.Lock()
	defer p.mu.Unlock()

	if slices.Contains(p.dirs, dir) {
		return false
	}
	p.dirs = slices.Insert(p.dirs, 0, dir)
	return true
}

// Dirs returns a copy of the search path entries.
func (p *SearchPath) Dirs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.dirs)
}

// Find resolves name against the working directory and then each search
// path entry. Absolute names are returned as-is when they exist.
func (p *SearchPath) Find(name string) (string, bool) {
	if filepath.IsAbs(name) {
		return name, fileExists(name)
	}
	if fileExists(name) {
		return name, true
	}
	for _, dir := range p.Dirs() {
		candidate := filepath.Join(dir, name)
		if fileExists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// EnsureProjectRoot derives the project root as the parent of the directory
// holding the calling source file and puts it on the Default search path.
// Calling it repeatedly leaves a single entry. The root is returned.
func EnsureProjectRoot() string {
	root := rootOf(callerDir(2))
	Default.EnsureFirst(root)
	return root
}

// callerDir returns the absolute directory of the source file skip frames up
// the stack, falling back to the working directory.
func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip)
	if !ok || file == "" {
		return workingDir()
	}
	abs, err := filepath.Abs(file)
	if err != nil {
		return workingDir()
	}
	return filepath.Dir(abs)
}

func rootOf(dir string) string {
	return filepath.Dir(filepath.Clean(dir))
}

func workingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
