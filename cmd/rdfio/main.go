// Command rdfio parses and re-serializes RDF documents across Turtle,
// NTriples, TriG and NQuads.
package main

import (
	"os"

	"github.com/rdfio/rdfio/rdfiocli"
)

func main() {
	os.Exit(rdfiocli.Execute())
}
