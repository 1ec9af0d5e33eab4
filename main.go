package main

import (
	"github.com/wharflab/semvet/cmd"
)

func main() {
	cmd.Execute()
}
