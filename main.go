package main

import "github.com/karsk-io/datascribe/cmd"

func main() {
	cmd.Execute()
}
