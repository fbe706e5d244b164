// Package build holds build-time information for the nexon binary.
package build

// Version is reported by `nexon version` and `nexon --version`.
// Release builds set it with -ldflags "-X go.trai.ch/nexon/internal/build.Version=...".
var Version = "dev"
