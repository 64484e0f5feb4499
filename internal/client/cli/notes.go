package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/totallysecure/mathnotes/internal/sanitize"
)

func (a *App) AddNote(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, "Enter note title", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	text, err := GetSimpleText(a.reader, "Enter math expression", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	// the expression must pass the allowed-character policy before it is
	// ever handed to the store
	text, err = sanitize.Validate(text)
	if err != nil {
		log.Printf("Invalid input: %s", err.Error())
		return err
	}

	if err := a.controller.AddNote(ctx, title, text); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	return nil
}

func (a *App) List(ctx context.Context) error {
	ns, err := a.controller.Notes()
	if err != nil {
		log.Println(err.Error())
		return err
	}

	if len(ns) == 0 {
		fmt.Println("No notes yet.")
		return nil
	}
	for i, n := range ns {
		fmt.Printf("%d. %s: %s\n", i, n.Title, n.Text)
	}
	return nil
}

func (a *App) Delete(ctx context.Context) error {
	index, err := a.promptIndex("Enter note index to delete")
	if err != nil {
		return err
	}

	if err := a.controller.DeleteNote(ctx, index); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	return nil
}

func (a *App) Eval(ctx context.Context) error {
	index, err := a.promptIndex("Enter note index to evaluate")
	if err != nil {
		return err
	}

	ns, err := a.controller.Notes()
	if err != nil {
		log.Println(err.Error())
		return err
	}
	if index < 0 || index >= len(ns) {
		log.Printf("Error: no note at index %d", index)
		return fmt.Errorf("no note at index %d", index)
	}

	result, err := a.evaluator.Evaluate(ns[index].Text)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Printf("Result: %s = %v\n", ns[index].Text, result)
	return nil
}

func (a *App) promptIndex(prompt string) (int, error) {
	raw, err := GetSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return 0, err
	}
	index, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Error: %q is not a number", raw)
		return 0, err
	}
	return index, nil
}
