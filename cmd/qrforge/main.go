package main

import "github.com/qrforge/qrforge/cmd/qrforge/cmd"

func main() {
	cmd.Execute()
}
