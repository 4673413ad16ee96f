package main

import (
	"flag"
	"fmt"
	"log"

	"card-admin.backend/pkg/crypto"
)

func main() {
	count := flag.Int("n", 1, "number of keys to generate")
	flag.Parse()

	for i := 0; i < *count; i++ {
		key, err := crypto.GenerateAccessKey()
		if err != nil {
			log.Fatalf("failed to generate key: %v", err)
		}
		fmt.Println(key)
	}
}
