// Command issue-token prints a session token for a user ID. It is meant for
// local development and smoke tests against a running server.
//
// Usage:
//
//	issue-token --user=<uuid> [--ttl=1h]
//
// Requires AUTH_JWT_SECRET environment variable to be set.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/leafcare-backend/internal/auth"
)

func main() {
	user := flag.String("user", "", "user ID to issue the token for (random when empty)")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("AUTH_JWT_SECRET")
	if secret == "" {
		log.Fatal("AUTH_JWT_SECRET environment variable is required")
	}
	issuer := os.Getenv("AUTH_JWT_ISSUER")
	if issuer == "" {
		issuer = "leafcare"
	}

	userID := uuid.New()
	if *user != "" {
		id, err := uuid.Parse(*user)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Usage: issue-token --user=<uuid> [--ttl=1h]")
			os.Exit(1)
		}
		userID = id
	}

	token, err := auth.NewJWTManager(secret, issuer, *ttl).GenerateAccessToken(userID)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Fprintf(os.Stderr, "user: %s\n", userID)
	fmt.Println(token)
}
