// Command polarcraft drives the optics demo computations from the
// terminal: parameter sweeps, polarization reports and styled PNG
// charts, exported as CSV or JSON.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
