package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/doccms/core/credentials"
)

var (
	hashPassword string
	hashCost     int
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [username]",
	Short: "Print a bcrypt hash for the users file",
	Long: `Print a bcrypt hash of a password. The password comes from --password
or, when the flag is absent, from the first line of stdin.
With a username argument the output is a ready-to-paste users file line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password := hashPassword
		if password == "" {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return errors.New("no password given: use --password or pipe it on stdin")
			}
			password = strings.TrimRight(line, "\r\n")
		}

		hash, err := credentials.Hash(password, hashCost)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %q\n", args[0], hash)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

func init() {
	hashPasswordCmd.Flags().StringVarP(&hashPassword, "password", "p", "", "Password to hash (read from stdin when empty)")
	hashPasswordCmd.Flags().IntVar(&hashCost, "cost", 0, "bcrypt cost (0 selects the default)")
	rootCmd.AddCommand(hashPasswordCmd)
}
