package main

import "github.com/azuretemplatebot/templatebot/cmd"

func main() {
	cmd.Execute()
}
