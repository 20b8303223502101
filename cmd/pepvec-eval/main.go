// cmd/pepvec-eval/main.go
package main

import (
	"pepvec/internal/appshell"
	"pepvec/internal/evalapp"
)

func main() {
	appshell.Main(evalapp.RunContext)
}
