package main

import "github.com/cascade-sh/cascade/cmd"

func main() {
	cmd.Execute()
}
