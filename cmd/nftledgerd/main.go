package main

import "github.com/solmsted/rippled/internal/cli"

func main() {
	cli.Execute()
}
