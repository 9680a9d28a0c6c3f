// Package main is the entry point for the ksuggest CLI.
package main

import "ksuggest.dev/pkg/ksuggest/cmd"

func main() {
	cmd.Execute()
}
