package main

import "github.com/tabsnap/tabsnap/cmd"

func main() {
	cmd.Execute()
}
