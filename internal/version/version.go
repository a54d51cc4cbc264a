package version

// Version can be overridden at build time with
// -ldflags "-X gffx/internal/version.Version=...".
var Version = "0.2.0"
