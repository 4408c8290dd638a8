package main

import "tabprof/cmd"

func main() {
	cmd.Execute()
}
