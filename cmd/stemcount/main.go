package main

import "stemcount/internal/cli"

func main() {
	cli.Execute()
}
