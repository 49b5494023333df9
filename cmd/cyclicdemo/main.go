// Command cyclicdemo builds small strong/weak reference graphs from a
// scenario file and drives them through release and cycle collection, to
// make the core package's behavior observable from outside a test binary.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
