// cmd/pepvec-train/main.go
package main

import (
	"os"

	"pepvec/internal/trainapp"
)

// The trainer handles SIGINT itself (first Ctrl-C ends training and
// still saves the model), so it does not run under appshell's
// signal-cancelled context.
func main() {
	os.Exit(trainapp.Run(os.Args[1:], os.Stdout, os.Stderr))
}
