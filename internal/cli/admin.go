package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bestpacific/induction/internal/common"
	"github.com/bestpacific/induction/internal/models"
	"github.com/bestpacific/induction/internal/session"
)

// Admin switches to the admin console. Regular users are turned away by the
// session's view-routing rule.
func (a *App) Admin(ctx context.Context) error {
	if err := a.session.Switch(session.ViewAdmin); err != nil {
		if errors.Is(err, common.ErrorViewForbidden) {
			fmt.Println("The admin console is only available to admins.")
			return nil
		}
		fmt.Println("Please log in first.")
		return nil
	}
	fmt.Println("Switched to the admin console.")
	return nil
}

// Dashboard switches back to the employee dashboard.
func (a *App) Dashboard(ctx context.Context) error {
	if err := a.session.Switch(session.ViewDashboard); err != nil {
		fmt.Println("Please log in first.")
		return nil
	}
	fmt.Println("Switched to the dashboard.")
	return nil
}

// requireAdminView guards the console commands below.
func (a *App) requireAdminView() bool {
	if !a.isAdminView() {
		fmt.Println("Switch to the admin console first (type 'admin').")
		return false
	}
	return true
}

// Users prints every account with role and induction progress.
func (a *App) Users(ctx context.Context) error {
	if !a.requireAdminView() {
		return nil
	}

	for _, u := range a.store.Users() {
		deletable := ""
		if !a.store.CanDeleteUser(u.ID) {
			deletable = " [last admin]"
		}
		fmt.Printf("%s  %s <%s>  %s/%s  joined %s  %d%%%s\n",
			u.ID, u.Name, u.Email, u.Role, u.Department, u.JoinDate, u.Progress, deletable)
	}
	return nil
}

// AddUser prompts for the new account's fields and creates it. Empty answers
// fall back to the store's defaults.
func (a *App) AddUser(ctx context.Context) error {
	if !a.requireAdminView() {
		return nil
	}

	name, err := getSimpleText(a.reader, "Name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	roleText, err := getSimpleText(a.reader, "Role (ADMIN or USER, default USER)", os.Stdout)
	if err != nil {
		return err
	}
	department, err := getSimpleText(a.reader, "Department (default Operations)", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.store.AddUser(ctx, models.User{
		Name:       name,
		Email:      email,
		Password:   password,
		Role:       models.Role(roleText),
		Department: department,
	})
	if err != nil {
		logError(err)
		return err
	}

	fmt.Printf("Created user %s (%s)\n", user.Name, user.ID)
	return nil
}

// DeleteUser prompts for an id and deletes the account. The store rejects
// deleting the last remaining admin regardless of what is typed here.
func (a *App) DeleteUser(ctx context.Context) error {
	if !a.requireAdminView() {
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter user id to delete", os.Stdout)
	if err != nil {
		return err
	}

	if !a.store.CanDeleteUser(id) {
		fmt.Println("That user cannot be deleted.")
		return nil
	}

	if err := a.store.DeleteUser(ctx, id); err != nil {
		switch {
		case errors.Is(err, common.ErrorLastAdmin):
			fmt.Println("Cannot delete the last remaining admin.")
		case errors.Is(err, common.ErrorNotFound):
			fmt.Println("No such user:", id)
		default:
			logError(err)
		}
		return nil
	}

	fmt.Println("Deleted.")
	return nil
}

// AddSection prompts for the new section's fields, including any number of
// media attachments, and creates it.
func (a *App) AddSection(ctx context.Context) error {
	if !a.requireAdminView() {
		return nil
	}

	title, err := getSimpleText(a.reader, "Title (default Untitled)", os.Stdout)
	if err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Content", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Category (Company, HR, Safety or Operations; default Company)", os.Stdout)
	if err != nil {
		return err
	}

	var attachments []models.MediaAttachment
	for {
		name, err := getSimpleText(a.reader, "Attachment name (empty to finish)", os.Stdout)
		if err != nil {
			return err
		}
		if name == "" {
			break
		}
		mediaType, err := getSimpleText(a.reader, "Attachment type (image, video, document or presentation)", os.Stdout)
		if err != nil {
			return err
		}
		url, err := getSimpleText(a.reader, "Attachment URL", os.Stdout)
		if err != nil {
			return err
		}
		attachments = append(attachments, models.MediaAttachment{
			ID:   fmt.Sprintf("m%d", len(attachments)+1),
			Type: models.MediaType(mediaType),
			Name: name,
			URL:  url,
		})
	}

	sec, err := a.store.AddSection(ctx, models.InductionSection{
		Title:       title,
		Content:     content,
		Category:    models.Category(category),
		Attachments: attachments,
	})
	if err != nil {
		logError(err)
		return err
	}

	fmt.Printf("Created section %q (%s, order %d)\n", sec.Title, sec.ID, sec.Order)
	return nil
}

// DeleteSection prompts for an id and removes the section.
func (a *App) DeleteSection(ctx context.Context) error {
	if !a.requireAdminView() {
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter section id to delete", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.store.DeleteSection(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Println("No such section:", id)
			return nil
		}
		logError(err)
		return nil
	}

	fmt.Println("Deleted.")
	return nil
}

// Reset wipes all persisted state and restores the seed dataset.
func (a *App) Reset(ctx context.Context) error {
	if !a.requireAdminView() {
		return nil
	}

	confirm, err := getSimpleText(a.reader, "Really reset all data to the seed state? (yes/no)", os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "yes" {
		fmt.Println("Aborted.")
		return nil
	}

	if err := a.store.Reset(ctx); err != nil {
		logError(err)
		return err
	}

	fmt.Println("State reset to the seed dataset.")
	return nil
}
