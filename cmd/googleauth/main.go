// Command googleauth builds and inspects the requests of a Google sign-in
// (OAuth2 authorization code) flow. It never talks to the provider itself.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
