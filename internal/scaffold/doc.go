// Package scaffold turns a project name into a PWA framework skeleton
// on disk. It powers the root "pwaforge <name>" invocation: a Plan is a
// pure description of the output tree (ordered path→content manifest
// plus the fixed empty asset directories), and Materialize writes a
// Plan under a fresh project root with per-file failure accounting.
package scaffold
