// Command createtoken mints an access token for the dashboard or the chat gateway.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/workledger/workledger-backend-go/internal/pkg/jwt"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// .env is optional here; flags and the environment win.
	_ = godotenv.Load()

	var role, subject, secret, expiration string

	flagSet := pflag.NewFlagSet("createtoken", pflag.ContinueOnError)
	flagSet.StringVar(&role, "role", string(jwt.RoleAdmin), "token role: admin or gateway")
	flagSet.StringVar(&subject, "subject", "", "token subject (default: the role name)")
	flagSet.StringVar(&secret, "secret", os.Getenv("JWT_SECRET_KEY"), "signing secret (default: $JWT_SECRET_KEY)")
	flagSet.StringVar(&expiration, "expires", "8760h", "token lifetime")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if !jwt.Role(role).IsValid() {
		return fmt.Errorf("%w: %s", jwt.ErrInvalidRole, role)
	}
	if secret == "" {
		return errors.New("--secret or JWT_SECRET_KEY is required")
	}
	if subject == "" {
		subject = role
	}

	token, expiresAt, err := jwt.NewJWTService(secret, expiration).GenerateAccessToken(subject, jwt.Role(role))
	if err != nil {
		return err
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "role=%s subject=%s expires_at=%d\n", role, subject, expiresAt)
	return nil
}
