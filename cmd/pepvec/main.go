// cmd/pepvec/main.go
package main

import (
	"pepvec/internal/app"
	"pepvec/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
