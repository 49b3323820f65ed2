package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("start")
	if len(os.Args) > 5 {
		os.Exit(2) // want "использование os.Exit в функции main запрещено"
	}

	defer os.Exit(0)

	go func() {
		os.Exit(1)
	}()

	os.Exit(1) // want "использование os.Exit в функции main запрещено"
}

func helper() {
	os.Exit(3)
}
