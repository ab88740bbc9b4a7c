// Package process manages process groups for external tools, so a cancelled
// or timed-out invocation leaves no orphaned children behind.
package process
