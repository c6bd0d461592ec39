package main

import (
	"github.com/cwhaley/espn-qbr/internal/cli"
)

func main() {
	cli.Execute()
}
