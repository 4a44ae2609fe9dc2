// Command hashpw prints a bcrypt hash suitable for the accounts table.
//
//	go run ./cmd/hashpw password123
package main

import (
	"fmt"
	"os"

	"selfcare_portal/internal/utils"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpw <password>")
		os.Exit(2)
	}
	password := os.Args[1]

	hash, err := utils.HashPassword(password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash failed: %v\n", err)
		os.Exit(1)
	}
	if !utils.CheckPasswordHash(password, hash) {
		fmt.Fprintln(os.Stderr, "hash does not verify")
		os.Exit(1)
	}
	fmt.Println(hash)
}
