package main

import (
	"github.com/joshyorko/heron/cmd"
)

func main() {
	cmd.Execute()
}
