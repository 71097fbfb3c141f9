package main

import (
	"os"

	"github.com/kimicode/kimi-auth/cmd"
)

func main() {
	os.Exit(cmd.Execute(os.Args, os.Stdout, os.Stderr))
}
