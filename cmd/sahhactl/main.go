package main

import "github.com/sahha-dz/sahha-go/cmd/sahhactl/cmd"

func main() {
	cmd.Execute()
}
