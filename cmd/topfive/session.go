package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/topfive/internal/portal/app"
	"github.com/aussiebroadwan/topfive/internal/portal/domain"
	"github.com/aussiebroadwan/topfive/internal/portal/service"
	"github.com/aussiebroadwan/topfive/internal/portal/tui"
	"github.com/aussiebroadwan/topfive/pkg/investsdk"
	"github.com/aussiebroadwan/topfive/pkg/jwtx"
	"github.com/aussiebroadwan/topfive/pkg/slogx"
)

// tokenLeeway tolerates clock skew when checking a token's expiry locally.
const tokenLeeway = 30 * time.Second

// TokenEnv supplies the bearer token to "status" when --token is absent.
const TokenEnv = "TOPFIVE_TOKEN"

// errUnresolved makes the process exit non-zero when a session could not
// be resolved past LOGIN.
var errUnresolved = errors.New("session not resolved")

func newLoginCmd() *cobra.Command {
	var (
		cpf        string
		password   string
		printToken bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print the screen the session resolves to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			client, ctx := cliClient(cmd, cfg)

			if password == "" {
				prompt := &tui.PromptUI{}
				if password, err = prompt.Input("Senha", true); err != nil {
					return err
				}
			}

			sessions := service.SDKSessions(client)
			auth := &service.AuthService{API: client, Resolver: &service.SessionResolver{Sessions: sessions}}
			res := auth.Login(ctx, cpf, password)

			return printResolution(cmd.OutOrStdout(), res, printToken)
		},
	}
	cmd.Flags().StringVar(&cpf, "cpf", "", "CPF, with or without punctuation")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when empty)")
	cmd.Flags().BoolVar(&printToken, "print-token", false, "print the bearer token on success")
	_ = cmd.MarkFlagRequired("cpf")

	return cmd
}

func newStatusCmd() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Resolve the screen for an existing bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				token = os.Getenv(TokenEnv)
			}
			if token == "" {
				return fmt.Errorf("a token is required: pass --token or set %s", TokenEnv)
			}

			// Opaque tokens are left for the server to judge.
			if claims, err := jwtx.Peek(token); err == nil {
				if err := claims.ValidateExpiryWithLeeway(time.Now(), tokenLeeway); err != nil {
					return err
				}
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			client, ctx := cliClient(cmd, cfg)

			resolver := &service.SessionResolver{Sessions: service.SDKSessions(client)}
			return printResolution(cmd.OutOrStdout(), resolver.Resolve(ctx, token), false)
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "bearer token (default $"+TokenEnv+")")

	return cmd
}

// cliClient builds the SDK client and a context carrying the command's
// logger. Logs go to stderr so stdout stays parseable.
func cliClient(cmd *cobra.Command, cfg *app.Config) (*investsdk.SDKClient, context.Context) {
	logger := slogx.New(slogx.Config{
		Service: "topfive",
		Version: app.BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Writer:  cmd.ErrOrStderr(),
	})
	return app.NewSDKClient(*cfg, logger), slogx.WithContext(cmd.Context(), logger)
}

func printResolution(w io.Writer, res service.Resolution, printToken bool) error {
	fmt.Fprintf(w, "screen: %s\n", res.Screen)

	if res.Session != nil {
		if c := res.Session.Client; c != nil {
			fmt.Fprintf(w, "client: %s (%s)\n", c.Name, c.ClientID)
			fmt.Fprintf(w, "status: %s\n", c.Status)
			fmt.Fprintf(w, "monthly value: %s\n", tui.Money(c.MonthlyValue))
		}
		if claims, err := jwtx.Peek(res.Session.Token); err == nil {
			if left, ok := claims.ExpiresIn(time.Now()); ok {
				fmt.Fprintf(w, "token expires in: %s\n", left.Round(time.Second))
			}
		}
		if printToken {
			fmt.Fprintf(w, "token: %s\n", res.Session.Token)
		}
	}

	if n := res.Notification; n != nil {
		fmt.Fprintf(w, "%s: %s\n", n.Title, n.Message)
	}

	if res.Screen == domain.ScreenLogin || res.Screen == domain.ScreenRegister {
		return errUnresolved
	}
	return nil
}
