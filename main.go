// Command shellkit is an interactive POSIX-style command shell.
package main

import "github.com/toba/shellkit/cmd"

func main() {
	cmd.Execute()
}
