package main

import "github.com/mj1618/pinwin/cmd"

func main() {
	cmd.Execute()
}
