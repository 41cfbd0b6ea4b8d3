package main

import "qa-catalog/cmd/qacatalog/cmd"

func main() {
	cmd.Execute()
}
