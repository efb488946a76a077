// Command seed-admin creates an admin account directly in the database.
// Intended for bootstrapping the first admin of a fresh deployment.
//
// Usage: seed-admin -username admin -password secret
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"rice-shop/internal/config"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	username := flag.String("username", "", "admin username")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	if *username == "" || *password == "" {
		return fmt.Errorf("username and password are required")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, cfg.Database.ConnectionString())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer conn.Close(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	id := uuid.New()
	now := time.Now()
	_, err = conn.Exec(ctx, `
		INSERT INTO admin_users (id, username, password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`, id, *username, string(hash), now, now)
	if err != nil {
		return fmt.Errorf("failed to insert admin user: %w", err)
	}

	fmt.Printf("Created admin %q (%s)\n", *username, id)
	return nil
}
