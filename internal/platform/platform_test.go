package platform

import "testing"

const (
	chromeAndroidUA = "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/129.0 Mobile Safari/537.36"
	firefoxLinuxUA  = "Mozilla/5.0 (X11; Linux x86_64; rv:131.0) Gecko/20100101 Firefox/131.0"
	safariMacUA     = "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_6) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.6 Safari/605.1.15"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		env  *Environment
		want OS
	}{
		{"nil environment", nil, NoOs},
		{"nil navigator", &Environment{}, NoOs},
		{"empty navigator", Navigator{}.Environment(), NoOs},
		{"mac intel", Navigator{Platform: "MacIntel"}.Environment(), MacOS},
		{"darwin", Navigator{Platform: "Darwin"}.Environment(), MacOS},
		{"win32", Navigator{Platform: "Win32"}.Environment(), Windows},
		{"x11", Navigator{Platform: "X11"}.Environment(), Linux},
		{"linux x86_64", Navigator{Platform: "Linux x86_64"}.Environment(), Linux},
		{"linux armv8l", Navigator{Platform: "Linux armv8l"}.Environment(), Linux},
		{"lowercase platform", Navigator{Platform: "macintel"}.Environment(), MacOS},
		{
			name: "android user agent with linux platform",
			env:  Navigator{Platform: "Linux armv81", UserAgent: chromeAndroidUA}.Environment(),
			want: Android,
		},
		{
			name: "android user agent with mac platform",
			env:  Navigator{Platform: "MacIntel", UserAgent: chromeAndroidUA}.Environment(),
			want: Android,
		},
		{
			name: "android user agent without platform",
			env:  Navigator{UserAgent: chromeAndroidUA}.Environment(),
			want: Android,
		},
		{
			name: "desktop user agent does not decide platform",
			env:  Navigator{UserAgent: firefoxLinuxUA}.Environment(),
			want: NoOs,
		},
		{
			name: "mac with user agent",
			env:  Navigator{Platform: "MacIntel", UserAgent: safariMacUA}.Environment(),
			want: MacOS,
		},
		{"win64 is not an exact match", Navigator{Platform: "Win64"}.Environment(), NoOs},
		{"iphone unclassified", Navigator{Platform: "iPhone"}.Environment(), NoOs},
		{"x11 prefix is not exact", Navigator{Platform: "X11 foo"}.Environment(), NoOs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.env); got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectAlwaysReturnsKnownLabel(t *testing.T) {
	platforms := []string{"", "MacIntel", "Win32", "X11", "Linux i686", "FreeBSD amd64", "PlayStation 4", "???"}
	agents := []string{"", chromeAndroidUA, firefoxLinuxUA, safariMacUA, "curl/8.0"}

	for _, p := range platforms {
		for _, ua := range agents {
			got := Detect(Navigator{Platform: p, UserAgent: ua}.Environment())
			if _, ok := ParseOS(string(got)); !ok {
				t.Errorf("Detect(%q, %q) returned unknown label %q", p, ua, got)
			}
		}
	}
}

func TestParseOS(t *testing.T) {
	tests := []struct {
		in     string
		want   OS
		wantOK bool
	}{
		{"Windows", Windows, true},
		{"macos", MacOS, true},
		{"LINUX", Linux, true},
		{"android", Android, true},
		{"NoOs", NoOs, true},
		{"beos", NoOs, false},
		{"", NoOs, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseOS(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseOS(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestKnown(t *testing.T) {
	for _, o := range []OS{Windows, MacOS, Linux, Android} {
		if !o.Known() {
			t.Errorf("Expected %q to be known", o)
		}
	}
	if NoOs.Known() {
		t.Error("Expected NoOs to be unknown")
	}
}
