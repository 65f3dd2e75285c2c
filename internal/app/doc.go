// Package app wires application dependencies for the CLI.
//
// Load reads Config from defaults, the YAML config file and BECOMING_*
// environment variables. NewWire builds the concrete store and logger from
// it, and New layers the check-in, delivery and signup services on top.
package app
