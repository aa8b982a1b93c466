package main

import (
	"os"

	"github.com/scanlens/scanlens/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
