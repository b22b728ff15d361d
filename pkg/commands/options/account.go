package options

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// AccountOptions
type AccountOptions struct {
	Email    string
	Password string
}

func AddEmailArgs(cmd *cobra.Command, o *AccountOptions) {
	cmd.Flags().StringVarP(&o.Email, "email", "e", "", "Account email address.")
}

func AddPasswordArgs(cmd *cobra.Command, o *AccountOptions) {
	cmd.Flags().StringVarP(&o.Password, "password", "p", "",
		Wrap80("Account password. When not set it is read from the first line of stdin."))
}

// ResolvePassword returns the --password flag or the first line of in.
func (o *AccountOptions) ResolvePassword(in io.Reader, prompt io.Writer) (string, error) {
	if o.Password != "" {
		return o.Password, nil
	}
	if prompt != nil {
		_, _ = fmt.Fprint(prompt, "password: ")
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errors.New("a password is required")
	}
	return line, nil
}
