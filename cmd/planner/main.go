package main

import "github.com/magliflex/planner/pkg/interfaces/cli"

func main() {
	cli.Execute()
}
