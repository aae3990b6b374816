// Command issue-token prints a bearer token for local development.
// It signs with the same JWT_SECRET the API server validates against.
//
//	JWT_SECRET=... go run ./cmd/issue-token -subject <uuid> -ttl 24h
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/pkordes/hammock-spots/internal/auth"
	"github.com/pkordes/hammock-spots/internal/domain"
)

func main() {
	subject := flag.String("subject", "", "principal UUID (random when empty)")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	v := viper.New()
	v.AutomaticEnv()

	tokens, err := auth.NewJWTService(v.GetString("JWT_SECRET"))
	if err != nil {
		slog.Error("invalid JWT_SECRET", "error", err)
		os.Exit(1)
	}

	id := uuid.New()
	if *subject != "" {
		if id, err = uuid.Parse(*subject); err != nil {
			slog.Error("subject must be a UUID", "subject", *subject, "error", err)
			os.Exit(1)
		}
	}

	token, err := tokens.Issue(domain.Principal{ID: id}, *ttl)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		os.Exit(1)
	}
	slog.Info("token issued", "subject", id, "expires_in", ttl.String())
	fmt.Println(token)
}
