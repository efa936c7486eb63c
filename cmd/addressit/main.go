package main

import "github.com/toolstack/addressit/internal/cli"

func main() {
	cli.Execute()
}
