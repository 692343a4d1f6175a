package main

import (
	"fmt"
	"os"

	"github.com/beam-mm/beammm/cmd"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load(".env")

	err := cmd.NewRootCommand().CobraCommand.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
