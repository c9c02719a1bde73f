package main

import (
	"github.com/andrescamacho/settlement-go/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
