package main

import "github.com/alexiusacademia/gomoc/cmd"

func main() {
	cmd.Execute()
}
