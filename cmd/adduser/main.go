// Command adduser creates an account directly against the configured
// storage backend, prompting for the password when it is not passed as a
// flag. Useful for seeding a deployment before the API is reachable.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fintrackhq/fintrack/internal/flagx"
	"github.com/fintrackhq/fintrack/internal/server"
	"github.com/fintrackhq/fintrack/internal/server/config"
	"github.com/fintrackhq/fintrack/internal/server/services"
	"golang.org/x/term"
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(stdin io.Reader, stdout io.Writer) error {
	args := flagx.FilterArgs(os.Args[1:], []string{"-user", "-password"})

	fs := flag.NewFlagSet("adduser", flag.ContinueOnError)
	username := fs.String("user", "", "Username")
	passwordFlag := fs.String("password", "", "Password (optional, will prompt if omitted)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *username == "" {
		fmt.Fprintln(stdout, "Usage: adduser -user <username> [-password <password>] [server flags]")
		fs.PrintDefaults()
		return fmt.Errorf("missing required flag: user")
	}

	password := *passwordFlag
	if password == "" {
		fmt.Fprint(stdout, "Password: ")
		var err error
		password, err = readPassword(stdin)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Fprintln(stdout)
	}

	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("password cannot be empty")
	}

	ctx := context.Background()
	cfg := config.LoadConfig()

	repos, err := server.NewManager(ctx, cfg)
	if err != nil {
		return fmt.Errorf("storage init error: %w", err)
	}
	defer repos.Close()

	auth := services.NewAuthService(repos.Users(), cfg)

	user, err := auth.Register(ctx, *username, password)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Fprintf(stdout, "User %s created with id %s\n", user.Username, user.ID)
	return nil
}

func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(bytePassword), nil
	}

	// fallback for pipes and tests
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
