// Command accountctl is a small operator tool that creates a user directly
// against the configured database, bypassing the HTTP endpoint. Useful for
// seeding a first account.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/term"

	"github.com/vkazmin/accountd/internal/server/config"
	"github.com/vkazmin/accountd/internal/server/repositories/repomanager"
	"github.com/vkazmin/accountd/internal/server/services"
)

func readLine(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Println(prompt)
	text, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func readPassword() (string, error) {
	fmt.Println("Enter password")
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func run() error {
	ctx := context.Background()
	cfg := config.LoadConfig()

	reader := bufio.NewReader(os.Stdin)

	email, err := readLine(reader, "Enter email")
	if err != nil {
		return err
	}
	firstName, err := readLine(reader, "Enter first name")
	if err != nil {
		return err
	}
	lastName, err := readLine(reader, "Enter last name")
	if err != nil {
		return err
	}
	password, err := readPassword()
	if err != nil {
		return err
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db open error: %w", err)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	us := services.NewUserService(db, rm, cfg)

	user, err := us.Register(ctx, services.RegisterParams{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Password:  password,
	})
	if err != nil {
		return err
	}

	fmt.Printf("created user %s (%s)\n", user.ID, user.Email)
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}
