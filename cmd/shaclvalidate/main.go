package main

import (
	"fmt"
	"os"

	"github.com/ensaremirerol/shacl-validate/cmd/shaclvalidate/command"
)

func main() {
	if err := command.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
