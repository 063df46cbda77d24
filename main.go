package main

import "github.com/meltemi-labs/reviewboost/cmd"

func main() {
	cmd.Execute()
}
