package main

import "github.com/mcoot/scrabblegame-go/internal/cli"

func main() {
	cli.Execute()
}
