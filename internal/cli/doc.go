// Package cli parses the command lines of mdna and controlburn, validates
// the logging flags and maps usage problems to process exit codes.
package cli
