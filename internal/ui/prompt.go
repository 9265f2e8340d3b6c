package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// PromptConnectionString prompts the user for a connection string
func PromptConnectionString() (string, error) {
	fmt.Print("Connection string: ")
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// PromptHiddenConnectionString prompts for a connection string without
// echoing it, for strings that carry a password
func PromptHiddenConnectionString() (string, error) {
	fmt.Print("Connection string (hidden): ")
	input, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(input)), nil
}

// PromptConfirm asks a yes/no question, defaulting to no
func PromptConfirm(question string) (bool, error) {
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(strings.ToLower(response)) == "y", nil
}
