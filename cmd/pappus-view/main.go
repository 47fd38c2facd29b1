package main

import "github.com/philipparndt/gopappus/cmd"

func main() {
	cmd.Execute()
}
