package main

import "sketchtree/cmd"

func main() {
	cmd.Execute()
}
