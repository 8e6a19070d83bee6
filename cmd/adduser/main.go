// Command adduser creates the site owner account that signs in to the
// operator endpoints and owns blog posts.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/folio/folio-go/internal/config"
	"github.com/folio/folio-go/internal/crypto"
	"github.com/folio/folio-go/internal/repository"
	"github.com/folio/folio-go/internal/service"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	email := flag.String("email", "", "login email (required)")
	name := flag.String("name", "", "display name (required)")
	password := flag.String("password", "", "password; generated and printed when empty")
	flag.Parse()

	_ = godotenv.Load()

	if err := run(*configPath, *email, *name, *password); err != nil {
		slog.Error("adduser failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath, email, name, password string) error {
	if email == "" || name == "" {
		flag.Usage()
		return fmt.Errorf("-email and -name are required")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()
	if err := repository.Migrate(ctx, cfg.DBDriver, cfg.DatabaseDSN); err != nil {
		return err
	}
	db, err := repository.NewDB(ctx, cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	generated := password == ""
	if generated {
		if password, err = crypto.GeneratePassword(crypto.DefaultPasswordLength); err != nil {
			return err
		}
	}

	auth := service.NewAuthService(repository.NewUserRepository(db), nil, cfg.JWTSecret, cfg.JWTExpiry)
	user, err := auth.CreateUser(ctx, email, name, password)
	if err != nil {
		return err
	}

	fmt.Printf("created user %s (%s)\n", user.Email, user.ID)
	if generated {
		fmt.Printf("password: %s\n", password)
	}
	return nil
}
