// Package phaselab exposes module-level metadata shared by the CLI and
// the HTTP server.
package phaselab

// Version is the phaselab release version.
const Version = "0.1.0"
