// Package output reports what dotlink does to the filesystem.
//
// Every mutating step (directory creation, backup, link removal, link
// creation, template generation, repository sync) is described by an
// Action and handed to a Reporter. In dry-run mode the Action is the only
// effect of the step, which makes the printed sequence a faithful preview
// of a live run.
//
// Printer renders actions line by line, styled with lipgloss when the
// destination is a color terminal. Recorder keeps them in memory.
package output
