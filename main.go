package main

import (
	"lexitag/cmd"
)

func main() {
	cmd.Execute()
}
