package qrng

import "fmt"

const (
	versionMajor = 1
	versionMinor = 1
	versionPatch = 0
)

// Version returns the package version as "major.minor.patch".
func Version() string {
	return fmt.Sprintf("%d.%d.%d", versionMajor, versionMinor, versionPatch)
}
