// Package scaffold creates new Springpress projects. It powers the root
// command: the requested name is resolved to an absolute directory, checked
// against the npm package naming rules, created, and seeded with a minimal
// package.json manifest.
//
// A run moves through a fixed sequence of stages and stops at the first
// error. Errors are typed so the caller can map them to exit codes; nothing
// is cleaned up when a later stage fails.
package scaffold
