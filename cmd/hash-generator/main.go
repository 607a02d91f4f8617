// Command hash-generator prints bcrypt hashes for passwords supplied on the
// command line. Useful for seeding test fixtures and local databases.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/myflix/myflix-api/internal/service/auth"
)

func main() {
	cost := flag.Int("cost", 10, "bcrypt cost factor")
	flag.Parse()

	passwords := flag.Args()
	if len(passwords) == 0 {
		fmt.Fprintln(os.Stderr, "usage: hash-generator [-cost N] password [password...]")
		os.Exit(1)
	}

	hasher := auth.NewBcryptHasher(*cost)

	for _, password := range passwords {
		hash, err := hasher.Hash(password)
		if err != nil {
			fmt.Printf("Error generating hash for %s: %v\n", password, err)
			continue
		}
		fmt.Printf("Password: %s\nHash: %s\n\n", password, hash)
	}
}
