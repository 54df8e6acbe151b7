package main

import "craft-planner/cmd"

func main() {
	cmd.Execute()
}
