// cmd/ioreport/main.go
package main

import (
	cmd "github.com/mwiater/ioreport/internal/commands"
)

// main starts the ioreport CLI application by delegating to the
// cobra root command defined in the ioreport package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
