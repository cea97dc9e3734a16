package main

import (
	"github.com/safehaven-world/safehaven/cmd"
)

func main() {
	cmd.Execute()
}
