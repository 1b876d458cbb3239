package main

import "helpctl/internal/cli"

func main() {
	cli.Execute()
}
