package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/bestpacific/induction/internal/models"
)

// List prints every induction section in display order.
func (a *App) List(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Please log in first.")
		return nil
	}

	for _, s := range a.store.Sections() {
		fmt.Printf("%d. [%s] %s (%s, %d attachments)\n",
			s.Order, s.Category, s.Title, s.ID, len(s.Attachments))
	}
	return nil
}

// findSection resolves a section by the id the user typed.
func (a *App) findSection(id string) (models.InductionSection, bool) {
	for _, s := range a.store.Sections() {
		if s.ID == id {
			return s, true
		}
	}
	return models.InductionSection{}, false
}

// Show prompts for a section id and prints its content and attachments.
func (a *App) Show(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Please log in first.")
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter section id", os.Stdout)
	if err != nil {
		return err
	}

	s, ok := a.findSection(id)
	if !ok {
		fmt.Println("No such section:", id)
		return nil
	}

	fmt.Printf("%s [%s]\nLast updated: %s\n\n%s\n", s.Title, s.Category,
		s.LastUpdated.Format("2006-01-02 15:04"), s.Content)
	for _, att := range s.Attachments {
		fmt.Printf("  - %s: %s (%s)\n", att.Type, att.Name, att.URL)
	}
	return nil
}

// Ask prompts for a free-text question and forwards it, together with the
// full content corpus, to the assistant. The reply is always a printable
// string; failures arrive as the gateway's canned messages.
func (a *App) Ask(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Please log in first.")
		return nil
	}

	question, err := getSimpleText(a.reader, "Ask the assistant", os.Stdout)
	if err != nil {
		return err
	}
	if question == "" {
		return nil
	}

	fmt.Println("Thinking...")
	answer := a.assistant.AnswerQuestion(ctx, question, a.store.Sections())
	fmt.Println(answer)
	return nil
}

// Summarize prompts for a section id and prints a two-bullet summary of it.
func (a *App) Summarize(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Please log in first.")
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter section id", os.Stdout)
	if err != nil {
		return err
	}

	s, ok := a.findSection(id)
	if !ok {
		fmt.Println("No such section:", id)
		return nil
	}

	fmt.Println(a.assistant.SummarizeSection(ctx, s))
	return nil
}

// logError is shared by handlers that only need to report a failure.
func logError(err error) {
	log.Printf("error: %v", err)
}
