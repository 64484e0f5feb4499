package cli

import (
	"context"
	"log"
	"os"

	"github.com/totallysecure/mathnotes/internal/common"
)

func (a *App) Login(ctx context.Context) error {
	userName, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer common.WipeByteArray(password)

	loaded, err := a.controller.Begin(ctx, userName, string(password))
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	log.Printf("Login successful, %d note(s) loaded", len(loaded))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.controller.End(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	log.Println("Logged out")
	return nil
}
