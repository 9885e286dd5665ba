package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli"
	"github.com/zalando/go-keyring"
)

const (
	keyringService = "octobatch"
	keyringUser    = "api-token"
)

var (
	keyringSet    = keyring.Set
	keyringGet    = keyring.Get
	keyringDelete = keyring.Delete
)

// storedToken returns the token from the OS keyring, or "" when none
// is stored or the keyring is unavailable.
func storedToken() string {
	tok, err := keyringGet(keyringService, keyringUser)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(tok)
}

func tokenSet(ctx *cli.Context) error {
	tok := strings.TrimSpace(ctx.Args().First())
	if tok == "" {
		return printErrWithCmdHelp(ctx, errors.New("no token provided"))
	}
	if err := keyringSet(keyringService, keyringUser, tok); err != nil {
		return fmt.Errorf("storing token: %w", err)
	}
	fmt.Println("Token stored in the OS keyring.")
	return nil
}

func tokenShow(ctx *cli.Context) error {
	tok := storedToken()
	if tok == "" {
		return errors.New("no token stored")
	}
	fmt.Println(maskToken(tok))
	return nil
}

func tokenDelete(ctx *cli.Context) error {
	if err := keyringDelete(keyringService, keyringUser); err != nil {
		return fmt.Errorf("deleting token: %w", err)
	}
	fmt.Println("Token removed from the OS keyring.")
	return nil
}

// maskToken keeps the first and last four characters visible.
func maskToken(tok string) string {
	if len(tok) <= 8 {
		return strings.Repeat("*", len(tok))
	}
	return tok[:4] + strings.Repeat("*", len(tok)-8) + tok[len(tok)-4:]
}
