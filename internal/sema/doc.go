// Package sema validates a parsed program.
//
// Check drains the raw item lists into name-keyed tables (one name space
// shared by all categories), checks declarations and walks function bodies
// with a per-block Scope. Nothing here aborts: every finding goes to the
// Reporter and the caller decides what an error means for the file.
package sema
