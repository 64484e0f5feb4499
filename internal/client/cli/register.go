package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/totallysecure/mathnotes/internal/common"
)

func (a *App) Register(ctx context.Context) error {
	userName, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if userName == "" {
		err := errors.New("username cannot be empty")
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer common.WipeByteArray(password)

	if len(password) == 0 {
		err := errors.New("password cannot be empty")
		log.Printf("error: %v", err)
		return err
	}

	if err := a.registry.Register(ctx, userName, string(password)); err != nil {
		if errors.Is(err, common.ErrDuplicateUsername) {
			fmt.Println("Username already exists.")
		} else {
			log.Printf("error: %v", err)
		}
		return err
	}

	fmt.Println("Success! You can now log in.")
	return nil
}
