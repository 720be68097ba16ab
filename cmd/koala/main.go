package main

import (
	"os"

	"github.com/msto63/koala/cmd/koala/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
