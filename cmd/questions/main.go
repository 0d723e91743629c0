// Package main provides the questions CLI.
package main

import "github.com/mesh-intelligence/questions/internal/cli"

func main() {
	cli.Execute()
}
