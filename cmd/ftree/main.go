package main

import "github.com/cbout22/filetree/internal/cli"

func main() {
	cli.Execute()
}
