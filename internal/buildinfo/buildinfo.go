// Package buildinfo carries the identifiers stamped into a firmware or
// simulator build via -ldflags "-X makerbadge/internal/buildinfo.Version=...".
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the serial log.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	}
	return "dev"
}

// Title is the simulator window and TUI title.
func Title() string {
	t := "Maker Badge " + Short()
	if Date != "" && Date != "unknown" {
		t += " (" + Date + ")"
	}
	return t
}
