// Command newuser provisions a Lockbox account: it stores the hashed
// username and password verifier so the user can authenticate later.
// Provisioning is separate from the authenticated CLI on purpose; the
// authenticated core never writes identity rows.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mkoval-dev/lockbox/internal/common"
	"github.com/mkoval-dev/lockbox/internal/config"
	"github.com/mkoval-dev/lockbox/internal/repositories/repomanager"
	"github.com/mkoval-dev/lockbox/internal/session"
)

func main() {
	args := flaglessArgs(os.Args[1:])
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: newuser <username> <password>")
		os.Exit(1)
	}
	username, password := args[0], args[1]

	ctx := context.Background()
	cfg := config.LoadConfig()

	store, err := repomanager.Open(ctx, cfg.StoreDriver, cfg.StoreDSN)
	if err != nil {
		log.Fatalf("error opening store: %v", err)
	}
	defer store.Close()

	fmt.Println("Creating account...")
	err = session.Register(ctx, store.Manager.Users(store.DB), username, password)
	if err != nil {
		if errors.Is(err, common.ErrUserExists) {
			fmt.Println("Cannot create account: account already exists")
			return
		}
		log.Fatalf("error creating account: %v", err)
	}
	fmt.Println("Done!")
}

// flaglessArgs returns the positional arguments, skipping the config
// flags shared with the main CLI (-c/-config/-d/-s) in both the
// separate-value and the "-flag=value" forms.
func flaglessArgs(args []string) []string {
	var out []string
	skip := map[string]bool{"-c": true, "-config": true, "-d": true, "-s": true}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			if skip[strings.SplitN(arg, "=", 2)[0]] {
				continue
			}
		}
		if skip[arg] {
			i++ // skip the flag's value too
			continue
		}
		out = append(out, arg)
	}
	return out
}
