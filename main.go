package main

import "parking-cli/cmd"

func main() {
	cmd.Execute()
}
