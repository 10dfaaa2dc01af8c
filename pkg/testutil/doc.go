// Package testutil provides filesystem fixtures shared by dotlink tests.
//
// All helpers work on real temporary directories: the code under test
// creates symlinks, which in-memory filesystems do not model faithfully.
package testutil
