// internal/version/version.go
package version

// Version is stamped at release time via -ldflags "-X pepvec/internal/version.Version=...".
var Version = "dev"
