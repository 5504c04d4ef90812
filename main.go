package main

import (
	"fmt"
	"os"
	"soilgate/cmd/soilgate"
)

func main() {
	if err := soilgate.Command.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
