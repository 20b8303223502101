// cmd/pepvec-sentences/main.go
package main

import (
	"pepvec/internal/appshell"
	"pepvec/internal/sentencesapp"
)

func main() {
	appshell.Main(sentencesapp.RunContext)
}
