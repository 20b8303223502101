// cmd/pepvec-plot/main.go
package main

import (
	"pepvec/internal/appshell"
	"pepvec/internal/plotapp"
)

func main() {
	appshell.Main(plotapp.RunContext)
}
