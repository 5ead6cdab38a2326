// Command hashpw produces an Argon2id password hash for the users file.
// With -u it prints a ready-to-paste credentials entry, otherwise the bare
// hash.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/admingate/internal/cryptox"
	"github.com/dmitrijs2005/admingate/internal/server/credentials"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

func run(w io.Writer, username string) error {

	fmt.Fprintln(w, "Enter password")
	password, err := readPassword(int(os.Stdin.Fd()))
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Repeat password")
	confirm, err := readPassword(int(os.Stdin.Fd()))
	if err != nil {
		return err
	}
	if string(password) != string(confirm) {
		return fmt.Errorf("passwords do not match")
	}

	hash, err := cryptox.HashPassword(string(password))
	if err != nil {
		return err
	}

	if username == "" {
		fmt.Fprintln(w, hash)
		return nil
	}

	entry, err := json.MarshalIndent(credentials.User{Username: username, PasswordHash: hash}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(entry))
	return nil
}

func main() {

	username := flag.String("u", "", "username for a full credentials entry")
	flag.Parse()

	if err := run(os.Stdout, *username); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}

}
