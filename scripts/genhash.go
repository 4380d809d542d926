// genhash.go

// SEED_PASSWORD='Super-Long-Temp-Password' go run ./scripts/genhash.go

package main

import (
	"fmt"
	"log"
	"os"

	"gmao/internal/auth"
)

func main() {
	pw := os.Getenv("SEED_PASSWORD")
	if pw == "" {
		log.Fatal("set SEED_PASSWORD")
	}
	phc, err := auth.HashPassword(pw, auth.DefaultParams())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(phc)
}
