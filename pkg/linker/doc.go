// Package linker places symbolic links into the user's home safely.
//
// Three pieces live here:
//
//   - EnsureDir creates the directory a path needs before it is written.
//   - Placer.Place puts a link at a destination, first moving any foreign
//     file or directory found there to <dst>.<YYYYMMDDHHMMSS>.back and
//     replacing any existing link.
//   - LinkStatic applies Place to every entry of a link mapping.
//
// Place is idempotent: a second run over the same source and destination
// finds its own link, replaces it, and never produces a second backup.
//
// In dry-run mode nothing is touched. The same decisions are taken and
// each step is handed to the output.Reporter flagged as DryRun, so the
// reported sequence matches what a live run would do.
package linker
