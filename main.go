package main

import "snake-server/cmd"

func main() {
	cmd.Execute()
}
