package main

import (
	"os"

	"github.com/faed235/hyperf-saas-helper/cmd/calc/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
