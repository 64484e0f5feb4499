package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if s := a.controller.Session(); s != nil {
		return fmt.Sprintf("(%s)", s.Account.Username)
	}
	return ""
}

func (a *App) Root(ctx context.Context) {
	fmt.Println("Math Notes (type 'help' for commands)")

	// A marker in the keyslot means somebody logged in before. Occupancy is
	// all it proves: the pair is not re-checked against the registry here.
	if !a.isLoggedIn() && a.controller.HasStoredCredential(ctx) {
		if u, _, err := a.controller.StoredCredential(ctx); err == nil {
			fmt.Printf("Previously signed in as %s. Type 'login' to continue.\n", u)
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)

	// flush-on-exit for the session that was live when input ended
	_ = a.controller.End(ctx)
}
