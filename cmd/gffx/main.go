// cmd/gffx/main.go
package main

import (
	"gffx/internal/app"
	"gffx/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
