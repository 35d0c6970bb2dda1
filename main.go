package main

import "github.com/eng618/suriza-solver/cmd"

func main() {
	cmd.Execute()
}
