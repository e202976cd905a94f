// Command reusectl is the operator CLI: schema migrations, ledger
// inspection and test token issuance.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
