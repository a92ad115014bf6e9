// Package main is the entry point for the mws CLI client.
package main

import (
	"github.com/merchantcs/mws-go/cmd/mws/cmd"
)

func main() {
	cmd.Execute()
}
