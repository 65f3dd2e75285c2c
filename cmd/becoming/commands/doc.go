// Package commands defines the becoming CLI and wires dependencies for subcommands.
//
// Commands
//
//   - align      Run the five-step alignment wizard from scratch
//   - checkin    Run the wizard pre-filled from the last check-in
//   - summary    Show the summary of the stored check-in
//   - export     Print the plain-text report, optionally emailing it
//   - signup     Leave an address for weekly check-in reminders
//   - reminder   Show whether a check-in is due
//
// # Implementation
//
// The root command loads config and builds the dependency graph (store,
// logger, services) before any subcommand runs and releases it afterwards.
package commands
