package main

import "github.com/theirongolddev/eatsplit/cmd"

func main() {
	cmd.Execute()
}
