package version

import "strings"

// Populated at build time via -ldflags.
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

func String() string {
	parts := []string{Version}
	if Commit != "" {
		parts = append(parts, "("+Commit+")")
	}
	if Date != "" {
		parts = append(parts, Date)
	}
	return strings.Join(parts, " ")
}
