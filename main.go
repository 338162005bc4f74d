package main

import "github.com/giannimassi/timetrack/internal/cli"

func main() {
	cli.Execute()
}
