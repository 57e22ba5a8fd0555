package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/enumeral/enumeral/internal/enumtype"
)

// LoadResult reports what a directory load found.
type LoadResult struct {
	// Definitions holds every definition built, in file order then
	// declaration order.
	Definitions []*enumtype.Definition
	// FileCount is the number of declaration files read.
	FileCount int
}

// LoadDir reads every *.yaml / *.yml declaration file in dir (sorted by
// name for deterministic registration order) and builds definitions.
// It does not register them; callers follow with RegisterAll so a load
// failure leaves the registry untouched.
func LoadDir(dir string) (*LoadResult, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("declarations directory not found: %s", dir)
	}
	if err != nil {
		return nil, fmt.Errorf("access declarations directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	files, err := findDeclFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no declaration files found in %s", dir)
	}

	result := &LoadResult{FileCount: len(files)}
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		defs, err := ParseDecls(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		result.Definitions = append(result.Definitions, defs...)
	}
	return result, nil
}

// LoadAndRegister loads a directory and registers everything it finds.
func LoadAndRegister(reg *enumtype.Registry, dir string) (*LoadResult, error) {
	result, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}
	if err := RegisterAll(reg, result.Definitions); err != nil {
		return nil, err
	}
	return result, nil
}

// findDeclFiles lists YAML files directly under dir, sorted by name.
func findDeclFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".yaml" || ext == ".yml" {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
