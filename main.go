package main

import "macnetconfig/cmd"

func main() {
	cmd.Execute()
}
