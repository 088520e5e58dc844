package main

import (
	"fmt"
	"os"
	"runtime/debug"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	os.Exit(run(os.Args))
}

// run executes the CLI and maps the outcome to an exit code: 0 on a clean
// exit, 1 on any startup failure, command error or panic.
func run(args []string) (code int) {
	e := &env{}
	defer e.Close()

	defer func() {
		if r := recover(); r != nil {
			if e.logger != nil {
				e.logger.Error("panic", "value", r, "stack", string(debug.Stack()))
			}
			fmt.Fprintf(os.Stderr, "error: panic: %v\n", r)
			code = 1
		}
	}()

	if err := newCLIApp(e).Run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
