package main

import "github.com/Danilo-Couto/simulador-de-pix/internal/cli"

func main() {
	cli.Execute()
}
