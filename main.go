package main

import (
	"bilifeed/cmd"
)

func main() {
	cmd.Execute()
}
