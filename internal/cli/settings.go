package cli

// This file holds process-wide CLI settings set from root command flags:
//   - debug mode, which switches failure output to the verbose cause chain
//   - the YAML file holding user-defined failure categories

import "sync"

var (
	settingsMu     sync.RWMutex
	debugMode      bool
	categoriesFile string
)

// SetDebugMode sets the global debug mode flag.
// When enabled, failures are printed with their full cause chain.
func SetDebugMode(enabled bool) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	debugMode = enabled
}

// IsDebugMode returns whether debug mode is enabled.
func IsDebugMode() bool {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return debugMode
}

// SetCategoriesFile sets the path of the YAML category registry.
// An empty path means only the generic categories are known.
func SetCategoriesFile(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	categoriesFile = path
}

// CategoriesFile returns the configured registry path.
func CategoriesFile() string {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return categoriesFile
}
