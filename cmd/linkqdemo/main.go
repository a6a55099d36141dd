package main

import "deedles.dev/linkq/cmd/linkqdemo/cmd"

func main() {
	cmd.Execute()
}
