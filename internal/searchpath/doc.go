// Package searchpath persists directories on the machine-wide executable
// search path. A Store abstracts where that list lives: the registry
// Environment key on Windows, or a system-wide shell profile on Unix-like
// systems. Register only ever appends; existing entries are never removed
// or reordered.
package searchpath
