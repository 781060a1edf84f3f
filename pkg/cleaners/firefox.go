package cleaners

import (
	"path/filepath"

	"github.com/cachesweep/cachesweep/pkg/cleaner"
	"github.com/cachesweep/cachesweep/pkg/fsutil"
	"github.com/cachesweep/cachesweep/pkg/platform"
)

// NewFirefox cleans the Firefox profile caches. Profile data itself
// (history, cookies, extensions) lives elsewhere and is not touched.
func NewFirefox(env *cleaner.Env) *cleaner.Base {
	home := fsutil.HomeDir()

	specs := []cleaner.CategorySpec{
		{
			ID:          "cache",
			Name:        "Profile caches",
			Description: "Per-profile HTTP and startup caches",
			Priority:    cleaner.PriorityHigh,
			UseCase:     cleaner.UseCaseBrowsing,
			PathsByOS: map[string][]string{
				platform.OSLinux:   {filepath.Join(home, ".cache", "mozilla", "firefox")},
				platform.OSDarwin:  {filepath.Join(home, "Library", "Caches", "Firefox")},
				platform.OSWindows: {filepath.Join(home, "AppData", "Local", "Mozilla", "Firefox", "Profiles")},
			},
		},
	}

	return cleaner.NewBase(env, "firefox", cleaner.KindBrowser, "Firefox browser caches", specs)
}
