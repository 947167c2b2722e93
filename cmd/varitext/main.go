package main

import "github.com/varitext/varitext/pkg/cli"

func main() {
	cli.Execute()
}
