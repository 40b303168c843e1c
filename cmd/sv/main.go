// Command sv validates JSON or YAML documents against the wire classes and
// exports their JSON Schema.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
