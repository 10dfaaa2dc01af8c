// Package types holds the small value types shared between the
// configuration loader and the linking engine.
package types
