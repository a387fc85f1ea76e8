// Package packager lays out a packaged script under managed storage.
//
// Given a verified inclusion set it creates the storage root and the
// namespaced destination directory, copies every inclusion while keeping its
// path relative to the project root, renames the entry point to a random
// name, writes the launcher that calls the renamed file, and records a build
// receipt next to them.
package packager
