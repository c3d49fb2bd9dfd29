package main

import "github.com/hance08/teller/cmd"

func main() {
	cmd.Execute()
}
