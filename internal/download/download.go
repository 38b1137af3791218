// Package download combines the detected visitor OS with the newest release
// to decide what the download page offers.
package download

import (
	"github.com/deadelineurz/rustupolis-downloads/internal/platform"
	"github.com/deadelineurz/rustupolis-downloads/internal/release"
)

// Selection is what the download page renders.
type Selection struct {
	OS platform.OS `json:"os"`
	// Assets is nil when the repository has no releases.
	Assets *release.PlatformAssets `json:"assets"`
	// Recommended is the download URL for OS, empty when there is none.
	Recommended string `json:"recommended"`
	// Generic is set when the page should show every option instead of a
	// single recommended download.
	Generic bool `json:"generic"`
}

// Select builds the selection for a visitor on os.
func Select(os platform.OS, assets *release.PlatformAssets) Selection {
	s := Selection{
		OS:     os,
		Assets: assets,
	}

	s.Recommended = URLFor(os, assets)
	s.Generic = s.Recommended == ""

	return s
}

// URLFor returns the slot of assets that serves os. Android and unclassified
// visitors have no desktop build.
func URLFor(os platform.OS, assets *release.PlatformAssets) string {
	if assets == nil {
		return ""
	}

	switch os {
	case platform.Linux:
		return assets.Linux
	case platform.MacOS:
		return assets.Mac
	case platform.Windows:
		return assets.Win
	default:
		return ""
	}
}
