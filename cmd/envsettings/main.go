// Command envsettings resolves the environment-conditional Drupal settings
// for the current process environment and renders, exports or serves them.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	opts := defaultOptions()
	os.Exit(execute(newRootCommand(opts), opts.stderr))
}

// execute runs root and maps its error to a process exit status.
func execute(root *cobra.Command, stderr io.Writer) int {
	err := root.Execute()
	if err == nil {
		return 0
	}

	var exitErr *exitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}

	fmt.Fprintf(stderr, "envsettings: %v\n", err)
	return 1
}

// exitCodeError carries the exit status of a child process through cobra.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("command exited with status %d", e.code)
}
