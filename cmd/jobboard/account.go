package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmcdole/jobboard/internal/adapter"
	"github.com/mmcdole/jobboard/internal/api"
	"github.com/mmcdole/jobboard/internal/domain"
)

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in against the demo auth endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			authClient, err := newAuthClient()
			if err != nil {
				return err
			}

			reader := bufio.NewReader(os.Stdin)
			email, err := prompt(reader, "Email: ")
			if err != nil {
				return err
			}
			password, err := promptPassword("Password: ")
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			res, err := authClient.Login(ctx, domain.Credentials{Email: email, Password: password})
			if err != nil {
				return fmt.Errorf("login failed: %s", domain.ErrorMessage(err))
			}

			fmt.Println()
			fmt.Printf("✓ %s\n", res.Message)
			if res.User != nil {
				fmt.Printf("  Signed in as %s <%s>\n", res.User.FullName, res.User.Email)
			}
			return nil
		},
	}
}

func newRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create an account on the demo auth endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			authClient, err := newAuthClient()
			if err != nil {
				return err
			}

			reader := bufio.NewReader(os.Stdin)
			name, err := prompt(reader, "Full name: ")
			if err != nil {
				return err
			}
			email, err := prompt(reader, "Email: ")
			if err != nil {
				return err
			}
			password, err := promptPassword("Password: ")
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			res, err := authClient.Register(ctx, domain.Registration{FullName: name, Email: email, Password: password})
			if err != nil {
				return fmt.Errorf("registration failed: %s", domain.ErrorMessage(err))
			}

			fmt.Println()
			fmt.Printf("✓ %s\n", res.Message)
			fmt.Println("Run jobboard login to sign in.")
			return nil
		},
	}
}

func newAuthClient() (*api.AuthClient, error) {
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	client := api.NewClient(cfg.API.AuthURL, cfg.API.Timeout, adapter.NullLogger())
	return api.NewAuthClient(client), nil
}

func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(input), nil
}

// promptPassword reads a password without echo
func promptPassword(label string) (string, error) {
	fmt.Print(label)
	passwordBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println() // Add newline after hidden input
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(passwordBytes), nil
}
