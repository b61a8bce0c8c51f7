package main

import (
	"log"

	"github.com/reyamade/komago/internal/tui"
)

func main() {
	if err := tui.Run(); err != nil {
		log.Fatal(err)
	}
}
