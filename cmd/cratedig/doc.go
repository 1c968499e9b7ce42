// Package main hosts the cratedig CLI entrypoint and command graph.
//
// The Cobra-based command tree covers the full project lifecycle: scanning
// directories for workstation project files, listing and inspecting what was
// found, reviewing candidates interactively, promoting keepers into the
// curated collection, and reporting on the result. It centralizes
// configuration resolution, catalog access, and structured logging setup so
// subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
