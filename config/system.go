package config

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Build information, set via -ldflags "-X github.com/derhamderham/diligence/config.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// VersionString formats the build information for --version
func VersionString() string {
	return fmt.Sprintf("diligence version %s\ncommit: %s\nbuilt: %s\n", Version, GitCommit, BuildDate)
}

// GenerateRandomID generates a 6-character random alphanumeric ID (lowercase)
func GenerateRandomID() string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	const length = 6
	id, err := gonanoid.Generate(alphabet, length)
	if err != nil {
		// Fallback to simple implementation if nanoid fails
		return "error0"
	}
	return id
}
