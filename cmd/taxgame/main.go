package main

import "github.com/braydenokley13-ux/T101-M1-L2/internal/adapters/cli"

func main() {
	cli.Execute()
}
