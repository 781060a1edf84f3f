package platform

// Package platform provides constants and utilities for handling platform-specific
// information such as operating systems and home directories.

const (
	// OSWindows represents the Windows operating system.
	OSWindows = "windows"
	// OSLinux represents the Linux operating system.
	OSLinux = "linux"
	// OSDarwin represents the macOS operating system.
	OSDarwin = "darwin"
	// OSFreeBSD represents the FreeBSD operating system.
	OSFreeBSD = "freebsd"
	// OSOpenBSD represents the OpenBSD operating system.
	OSOpenBSD = "openbsd"
	// OSNetBSD represents the NetBSD operating system.
	OSNetBSD = "netbsd"
	// AnyOS matches any operating system.
	AnyOS = "any"
)

// ValidOS returns a list of valid OS values.
func ValidOS() []string {
	return []string{
		OSWindows,
		OSLinux,
		OSDarwin,
		OSFreeBSD,
		OSOpenBSD,
		OSNetBSD,
	}
}
