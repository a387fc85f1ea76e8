// Package builder runs the build pipeline:
//
//	privilege check → manifest → storage root → inclusions → package → search path
//
// Each step either succeeds or stops the run with a *StepError naming the
// step. Nothing below the command layer exits the process; the caller prints
// the error as the run's fatal line. Steps that already ran are not undone.
package builder
