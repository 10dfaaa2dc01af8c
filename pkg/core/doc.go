// Package core runs a complete dotlink pass.
//
// A run loads the configuration, makes sure the generated root exists and
// resolves the template environment. In normal mode it then clones or
// pulls repositories, links static files and renders templates, in that
// order. In check mode it only compares generated files against a fresh
// render and writes a drift report.
//
// Every filesystem step goes through an output.Reporter, so dry-run and
// live runs describe the same sequence of actions; dry-run simply never
// performs them.
package core
