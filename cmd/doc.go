// Package cmd implements the command-line interface for labrecords.
//
// This package provides the following commands:
//   - analyze: Retrieve recent Gmail messages and classify them as lab records
//   - auth: Authorize Gmail access and cache the OAuth token
//   - version: Display version information
//
// The analyze command is the default command when no subcommand is specified.
package cmd
