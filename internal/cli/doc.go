// Package cli defines the Cobra command tree for the pwaforge CLI. The
// root command performs the generation itself; each other file in this
// package registers one subcommand (version, config) with the root.
// Command implementations delegate to internal packages for business
// logic and only handle flag parsing, I/O formatting, and user
// interaction.
package cli
