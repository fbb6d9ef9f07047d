package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/emsearch/emsearch-client/internal/constants"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var skipVerify bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a bearer token",
		Long: `Store a bearer token in the configuration file.

The token is taken from --token or EMSEARCH_TOKEN, or read from the terminal
without echo. It is checked against the API before it is saved.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token := viper.GetString("token")
			if token == "" {
				read, err := readToken(cmd.OutOrStdout(), cmd.InOrStdin())
				if err != nil {
					return err
				}

				token = read
			}

			if token == "" {
				return constants.ErrEmptyToken
			}

			viper.Set("token", token)

			if !skipVerify {
				ctx, cancel := commandContext(cmd)
				defer cancel()

				client, err := CreateClient(ctx)
				if err != nil {
					return err
				}

				_, err = client.Projects().All(ctx, &emsearch.ProjectListParams{
					ListParams: *emsearch.NewListParams().WithLimit(1),
				})
				if err != nil {
					return fmt.Errorf("failed to verify token: %w", err)
				}
			}

			config := loadConfig()
			config.Token = token

			err := saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			api := config.API
			if api == "" {
				api = constants.DefaultBaseURL
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully logged in to %s\n", api)

			return nil
		},
	}

	cmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "save the token without calling the API")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.Token = ""

			err := saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Successfully logged out")

			return nil
		},
	}
}

// readToken prompts for the token, without echo when stdin is a terminal.
func readToken(out io.Writer, in io.Reader) (string, error) {
	_, _ = fmt.Fprint(out, "Bearer token: ")

	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		token, err := term.ReadPassword(int(file.Fd()))

		_, _ = fmt.Fprintln(out)

		if err != nil {
			return "", fmt.Errorf("failed to read token: %w", err)
		}

		return strings.TrimSpace(string(token)), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read token: %w", err)
	}

	return strings.TrimSpace(line), nil
}
