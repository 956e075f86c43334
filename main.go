package main

import "github.com/they4kman/queensweep/cmd"

func main() {
	cmd.Execute()
}
