package main

import (
	"os"

	"github.com/aikya-dev/aikya/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
