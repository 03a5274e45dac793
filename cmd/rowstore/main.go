package main

import "rowstore/internal/cli"

func main() {
	cli.Execute()
}
