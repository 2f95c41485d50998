package main

import (
	"fmt"
	"os"
)

func helper() {
	os.Exit(2)
}

func main() {
	fmt.Println("starting")
	defer func() {
		os.Exit(0)
	}()
	if len(os.Args) > 3 {
		helper()
	}
	os.Exit(1) // want "direct os.Exit call in main function"
}
