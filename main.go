package main

import (
	"log"

	"github.com/tkerdo/portflow/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
