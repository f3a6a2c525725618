package main

import "subsidiaries-cli/cmd"

func main() {
	cmd.Execute()
}
