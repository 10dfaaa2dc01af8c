// Package filesystem provides the filesystem seam used by dotlink.
//
// The linker and template packages never call the os package directly;
// they go through FS so tests can observe or intercept every mutation.
package filesystem
