package main

import (
	"fmt"
	"os"

	"github.com/enpeak/linglog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
