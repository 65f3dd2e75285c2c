// Package logging builds the zap logger used across the app.
//
// The terminal belongs to the wizard, so logs go to a file (JSON by default)
// rather than stdout or stderr.
package logging
