// Package environment resolves the variables that templates may reference.
//
// The configuration names two lists of process environment variables:
// plain ones, used verbatim, and base64 ones, decoded to UTF-8 text before
// use. Resolve reads them once at the start of a run and returns an
// immutable Resolved mapping that is shared by every template.
//
// A name may be listed only once across both lists. Resolution is
// all-or-nothing: any missing, duplicate or undecodable variable aborts it
// and no partial mapping is returned.
package environment
