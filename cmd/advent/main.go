package main

import "github.com/oshokin/advent2018/cmd/advent/cmd"

func main() {
	cmd.Execute()
}
