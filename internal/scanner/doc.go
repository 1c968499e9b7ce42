// Package scanner discovers DAW project files on disk.
//
// Discovery is split into three cooperating pieces: the noise classifier
// (pure predicate over a path string), the project resolver (turns one
// matched file into a catalog.DiscoveredProject, inferring the project
// folder, title, and sibling assets per format convention), and the walker
// (recursively enumerates a root directory, wiring the other two together).
//
// The classifier and resolver never return errors to the walker; a file
// that cannot be classified or resolved is logged and skipped so one
// unreadable entry never aborts a scan.
package scanner
