// Package pkgname checks project names against the npm package naming rules.
//
// The rules split into errors, which no registry accepts, and warnings, which
// older registries tolerated but which are rejected for new packages. A name
// is usable for a new project only when it produces neither.
package pkgname
