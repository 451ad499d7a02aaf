// Package app wires loaders, algorithms and report rendering into the two
// programs: the song similarity check and the controlled-burn simulation.
// Report text goes to the writer passed in; diagnostics go to the logger
// carried by the context.
package app
