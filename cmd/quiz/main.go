package main

import "github.com/berth-dev/quiz/internal/cli"

func main() {
	cli.Execute()
}
