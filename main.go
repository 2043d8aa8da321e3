package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kakeetopius/gsweep/internal/argparser"
)

func main() {
	cmd := argparser.GetCommand()
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
