package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"blackjack-server/internal/util"
	"blackjack-server/pkg/account"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var command = flag.String("c", "account", "specifies the command (account, password)")

func main() {
	flag.Parse()

	switch *command {
	case "account":
		createAccount()
	case "password":
		resetPassword()
	default:
		logrus.Fatalf("unknown command: %s", *command)
	}
}

func createAccount() {
	username := getUsername()
	if username == "" {
		os.Exit(1)
	}

	password := getPassword()
	if password == "" {
		os.Exit(1)
	}

	avatar, err := getInput("Avatar (blank for random)")
	if err != nil {
		logrus.WithError(err).Fatal("could not get answer")
	}

	if avatar == "" {
		avatar = util.RandomAvatar()
	} else if !util.IsValidAvatar(avatar) {
		logrus.Fatalf("unsupported avatar: %s", avatar)
	}

	acct, err := account.CreateAccount(context.Background(), username, password, avatar, "127.0.0.1")
	if err != nil {
		logrus.WithError(err).Fatal("could not create account")
	}

	fmt.Printf("Created account %d (%s %s)\n", acct.ID, acct.Avatar, acct.Username)
}

func resetPassword() {
	username := getUsername()
	if username == "" {
		os.Exit(1)
	}

	acct, err := account.GetAccountByUsername(context.Background(), username)
	if err != nil {
		logrus.WithError(err).Fatal("could not find account")
	}

	password := getPassword()
	if password == "" {
		os.Exit(1)
	}

	if err := acct.SetPassword(password); err != nil {
		logrus.WithError(err).Fatal("could not set password")
	}

	fmt.Printf("Password updated for %s\n", acct.Username)
}

func getPassword() string {
	for {
		fmt.Print("Password: ")
		pwBytes, err := term.ReadPassword(0)
		if err != nil {
			continue
		}
		fmt.Println("")

		password := strings.TrimRight(string(pwBytes), "\r\n")

		if password == "" {
			return ""
		}

		if len(password) < 6 {
			_, _ = fmt.Fprintf(os.Stderr, "password must be 6 or more characters\n")
			continue
		}

		return password
	}
}

func getUsername() string {
	str, err := getInput("Username")
	if err != nil {
		logrus.WithError(err).Warn("could not read username")
		return ""
	}

	return str
}

func getInput(question string) (string, error) {
	fmt.Printf("%s: ", question)
	reader := bufio.NewReader(os.Stdin)
	str, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	str = strings.TrimRight(str, "\r\n")

	return str, nil
}
