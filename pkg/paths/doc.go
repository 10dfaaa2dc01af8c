// Package paths provides centralized path handling for dotlink.
//
// It owns the three path rules the rest of the code relies on:
// home expansion of configured destinations, the location of generated
// artifacts under the generated root, and the naming of backup files.
package paths
