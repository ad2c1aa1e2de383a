package main

import "github.com/mastrost/Coiil/cmd"

func main() {
	cmd.Execute()
}
