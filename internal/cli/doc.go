// Package cli defines the Cobra root command for create-springpress-app.
// The command only parses arguments, wires configuration, logging and the
// prompt into the scaffolder, and turns the scaffolder's typed errors into
// diagnostics and exit codes.
package cli
