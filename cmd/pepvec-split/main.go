// cmd/pepvec-split/main.go
package main

import (
	"pepvec/internal/appshell"
	"pepvec/internal/splitapp"
)

func main() {
	appshell.Main(splitapp.RunContext)
}
