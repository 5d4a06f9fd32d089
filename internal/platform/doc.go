// Package platform provides the small set of cross-platform filesystem
// primitives the scaffolder relies on: an existence check that does not
// follow symlinks, non-recursive directory creation, and the native line
// terminator used when writing text files.
package platform
