package main

import "github.com/mvanek/projboard/cmd"

func main() {
	cmd.Execute()
}
