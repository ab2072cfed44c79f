package main

import (
	"pricing-datagen/internal/commands"
)

func main() {
	commands.Execute()
}
