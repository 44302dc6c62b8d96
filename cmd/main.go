// cmd/main.go
package main

import cmd "github.com/katalvlaran/randwalk/cmd/randwalk"

// main starts the randwalk CLI application by delegating to the cobra
// root command defined in the randwalk command package.
func main() {
	cmd.Execute()
}
