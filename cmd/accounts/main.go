package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes
const (
	exitFailure      = 1
	exitDatabaseInit = 4
)

// exitError carries the process exit code out of a command.
type exitError struct {
	err  error
	code int
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func databaseInitError(err error) error {
	return &exitError{err: err, code: exitDatabaseInit}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		code := exitFailure
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			code = exitErr.code
		}
		slog.Error("accounts exited with error", "error", err, "exit_code", code)
		os.Exit(code)
	}
}

func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	root := &cobra.Command{
		Use:           "accounts",
		Short:         "Account REST API Service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	root.AddCommand(serve, newMigrateCmd(), newDBCreateCmd())

	return root
}
