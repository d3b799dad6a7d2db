// Package main provides the rdf2jsonld binary, which converts N-Triples and
// N-Quads documents into JSON-LD.
package main

import (
	"fmt"
	"os"
)

const (
	Version = "0.1.0"
	appName = "rdf2jsonld"
)

func main() {
	if err := rootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
