package cleaners

import (
	"path/filepath"

	"github.com/cachesweep/cachesweep/pkg/cleaner"
	"github.com/cachesweep/cachesweep/pkg/fsutil"
	"github.com/cachesweep/cachesweep/pkg/platform"
)

// NewChrome cleans the HTTP caches of Google Chrome and Chromium. Profiles,
// bookmarks and cookies stay untouched.
func NewChrome(env *cleaner.Env) *cleaner.Base {
	home := fsutil.HomeDir()

	specs := []cleaner.CategorySpec{
		{
			ID:          "chrome",
			Name:        "Chrome cache",
			Description: "Google Chrome HTTP cache",
			Priority:    cleaner.PriorityHigh,
			UseCase:     cleaner.UseCaseBrowsing,
			PathsByOS: map[string][]string{
				platform.OSLinux:   {filepath.Join(home, ".cache", "google-chrome")},
				platform.OSDarwin:  {filepath.Join(home, "Library", "Caches", "Google", "Chrome")},
				platform.OSWindows: {filepath.Join(home, "AppData", "Local", "Google", "Chrome", "User Data", "Default", "Cache")},
			},
		},
		{
			ID:          "chromium",
			Name:        "Chromium cache",
			Description: "Chromium HTTP cache",
			Priority:    cleaner.PriorityHigh,
			UseCase:     cleaner.UseCaseBrowsing,
			PathsByOS: map[string][]string{
				platform.OSLinux:   {filepath.Join(home, ".cache", "chromium")},
				platform.OSDarwin:  {filepath.Join(home, "Library", "Caches", "Chromium")},
				platform.OSWindows: {filepath.Join(home, "AppData", "Local", "Chromium", "User Data", "Default", "Cache")},
			},
		},
	}

	return cleaner.NewBase(env, "chrome", cleaner.KindBrowser, "Chrome and Chromium browser caches", specs)
}
