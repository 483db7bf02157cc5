package main

import "github.com/scienceol/stayawake/cmd"

func main() {
	cmd.Execute()
}
