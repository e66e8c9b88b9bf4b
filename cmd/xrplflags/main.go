package main

import "github.com/LeJamon/xrplmodel/internal/cli"

func main() {
	cli.Execute()
}
