package main

import "inkwell/internal/cli"

func main() {
	cli.Execute()
}
