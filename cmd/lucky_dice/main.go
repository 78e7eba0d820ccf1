package main

import (
	"fmt"
	"lucky_dice/internal/app"
	"os"
)

func main() {
	if err := app.NewApp().Run(); err != nil {
		fmt.Fprintln(os.Stderr, "lucky_dice:", err)
		os.Exit(1)
	}
}
