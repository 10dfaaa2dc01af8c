// Package clone keeps git checkouts of configured repositories up to date.
//
// A repository whose path does not exist yet is cloned; one that exists is
// pulled. Git runs as a subprocess through the Runner interface so tests
// can substitute a fake.
package clone
