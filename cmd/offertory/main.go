package main

import "offertory/internal/cli"

func main() {
	cli.Execute()
}
