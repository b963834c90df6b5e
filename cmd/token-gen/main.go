package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"streaming-service.backend/internal/config"
	"streaming-service.backend/pkg/jwt"
)

var (
	stdout = io.Writer(os.Stdout)
	fatalf = log.Fatalf
)

type options struct {
	subject string
	role    string
}

func parseOptions(args []string) (options, error) {
	fs := flag.NewFlagSet("token-gen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	subject := fs.String("subject", "operator", "token subject")
	role := fs.String("role", jwt.RoleAdmin, "token role")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if *subject == "" {
		return options{}, fmt.Errorf("subject must not be empty")
	}
	return options{subject: *subject, role: *role}, nil
}

func generateToken(cfg *config.Config, opts options) (string, error) {
	svc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry)
	return svc.GenerateAccessToken(opts.subject, opts.role)
}

func main() {
	_ = godotenv.Load()

	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		fatalf("invalid arguments: %v", err)
		return
	}

	cfg := config.Load()
	token, err := generateToken(cfg, opts)
	if err != nil {
		fatalf("failed to sign token: %v", err)
		return
	}

	fmt.Fprintf(stdout, "Token for %s (%s), valid %s\n", opts.subject, opts.role, cfg.JWT.AccessExpiry)
	fmt.Fprintf(stdout, "Authorization: Bearer %s\n", token)
}
