// Command monster finds bugs in RISC-U ELF binaries through symbolic
// execution and rarity-guided concrete fuzzing.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
