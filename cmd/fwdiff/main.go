// Command fwdiff prints values and exact derivatives of the registered
// functions.
//
//	fwdiff demo --path eager
//	fwdiff grad rosenbrock --at 1.5,2
//	fwdiff jac ratio --format json
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/fwdiff/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
