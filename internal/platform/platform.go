// Package platform guesses a visitor's operating system from the values a
// browser reports through navigator.platform and navigator.userAgent.
package platform

import "strings"

// OS is an operating system label.
type OS string

// Known operating system labels.
const (
	Windows OS = "Windows"
	MacOS   OS = "MacOS"
	Linux   OS = "Linux"
	Android OS = "Android"
	// NoOs means the environment could not be classified.
	NoOs OS = "NoOs"
)

// All lists every label Detect can return.
var All = []OS{Windows, MacOS, Linux, Android, NoOs}

// String returns the label.
func (o OS) String() string {
	return string(o)
}

// Known reports whether o names a classified operating system.
func (o OS) Known() bool {
	switch o {
	case Windows, MacOS, Linux, Android:
		return true
	}
	return false
}

// ParseOS matches s against the known labels, ignoring case.
func ParseOS(s string) (OS, bool) {
	for _, o := range All {
		if strings.EqualFold(s, string(o)) {
			return o, true
		}
	}
	return NoOs, false
}

// Navigator carries the browser values used for detection. Either may be empty.
type Navigator struct {
	Platform  string `json:"platform"`
	UserAgent string `json:"userAgent"`
}

// Environment is the browser-like context passed to Detect.
// A nil Environment or a nil Navigator is treated as absent.
type Environment struct {
	Navigator *Navigator
}

// Environment wraps n in an Environment.
func (n Navigator) Environment() *Environment {
	return &Environment{Navigator: &n}
}

// Detect returns the best-guess operating system for env.
//
// The user agent is checked for Android first because some Android browsers
// report a generic Linux platform. Exact platform matches for macOS and
// Windows come before the broader Linux substring check.
func Detect(env *Environment) OS {
	var platform, userAgent string
	if env != nil && env.Navigator != nil {
		platform = env.Navigator.Platform
		userAgent = env.Navigator.UserAgent
	}

	if platform == "" && userAgent == "" {
		return NoOs
	}

	platform = strings.ToUpper(platform)
	userAgent = strings.ToUpper(userAgent)

	switch {
	case strings.Contains(userAgent, "ANDROID"):
		return Android
	case platform == "MACINTEL" || platform == "DARWIN":
		return MacOS
	case platform == "WIN32":
		return Windows
	case strings.Contains(platform, "LINUX") || platform == "X11":
		return Linux
	default:
		return NoOs
	}
}
