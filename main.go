package main

import "github.com/tablewise/posterm/cmd"

func main() {
	cmd.Execute()
}
