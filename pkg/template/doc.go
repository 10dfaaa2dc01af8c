// Package template renders dotfile templates and checks generated files
// for drift.
//
// Templates use a single placeholder form, {{ NAME }}: two braces, exactly
// one space, the variable name, one space, two braces. Each resolved
// variable is replaced by plain text substitution over the whole template.
// There are no conditionals, loops, filters or escaping, and placeholders
// naming unknown variables are left in the output as written.
//
// Renderer writes the substituted text to <generated>/<source> and links
// the generated file to its destination through a linker.Placer. Checker
// re-renders in memory and compares against what is already under the
// generated root; it never writes.
package template
