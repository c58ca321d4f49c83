package main

import (
	"log"

	"github.com/Aman-s12345/swagger-sync/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatalf("swagger-sync: %v", err)
	}
}
