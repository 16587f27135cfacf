package main

import "github.com/strucalc/strucalc/cmd"

func main() {
	cmd.Execute()
}
