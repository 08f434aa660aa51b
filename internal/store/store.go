// Package store holds the authoritative in-memory copy of the portal's users
// and induction sections and keeps it synchronized with the local state
// database. All mutation goes through Store methods; views never touch the
// collections directly.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/bestpacific/induction/internal/common"
	"github.com/bestpacific/induction/internal/dbx"
	"github.com/bestpacific/induction/internal/logging"
	"github.com/bestpacific/induction/internal/models"
	"github.com/bestpacific/induction/internal/repositories/state"
	"github.com/google/uuid"
)

// Persisted blob keys, one per collection.
const (
	usersKey    = "users"
	sectionsKey = "sections"
)

// now and newID are test seams.
var (
	now   = time.Now
	newID = uuid.NewString
)

// Store owns the users and sections collections. It is confined to the
// single interactive goroutine; no internal locking is performed.
type Store struct {
	db     *sql.DB
	logger logging.Logger

	users    []models.User
	sections []models.InductionSection
}

// New returns a Store bound to the given database. Call Load before use.
func New(db *sql.DB, logger logging.Logger) *Store {
	return &Store{db: db, logger: logger}
}

func (s *Store) repo() state.Repository {
	return state.NewSQLiteRepository(s.db)
}

// Load initializes both collections from their persisted blobs. A missing or
// unparseable blob falls back to the seed dataset for that collection only;
// parse failures are recovered silently (warn log, never surfaced). No schema
// validation is performed beyond parse success.
func (s *Store) Load(ctx context.Context) error {
	repo := s.repo()

	raw, err := repo.Get(ctx, usersKey)
	if err != nil {
		return fmt.Errorf("loading users: %w", err)
	}
	s.users = decodeOrSeed(ctx, s.logger, usersKey, raw, SeedUsers)

	raw, err = repo.Get(ctx, sectionsKey)
	if err != nil {
		return fmt.Errorf("loading sections: %w", err)
	}
	s.sections = decodeOrSeed(ctx, s.logger, sectionsKey, raw, SeedSections)

	s.logger.Info(ctx, "state loaded", "users", len(s.users), "sections", len(s.sections))
	return nil
}

func decodeOrSeed[T any](ctx context.Context, logger logging.Logger, key string, raw []byte, seed func() []T) []T {
	if raw == nil {
		return seed()
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		logger.Warn(ctx, "persisted blob is unparseable, falling back to seed data", "key", key, "error", err.Error())
		return seed()
	}
	return items
}

// persist writes both collections back to storage. A collection is written
// only when it has at least one element: deleting the last remaining user or
// section leaves the previous non-empty snapshot on disk. The two writes are
// deliberately independent, with no atomicity across the pair.
func (s *Store) persist(ctx context.Context) error {
	repo := s.repo()

	if len(s.users) > 0 {
		raw, err := json.Marshal(s.users)
		if err != nil {
			return fmt.Errorf("encoding users: %w", err)
		}
		if err := repo.Set(ctx, usersKey, raw); err != nil {
			return err
		}
	}

	if len(s.sections) > 0 {
		raw, err := json.Marshal(s.sections)
		if err != nil {
			return fmt.Errorf("encoding sections: %w", err)
		}
		if err := repo.Set(ctx, sectionsKey, raw); err != nil {
			return err
		}
	}

	return nil
}

// Authenticate matches email case-insensitively and the password exactly
// against the users collection, returning a value copy of the matching user.
// On no match it returns common.ErrorInvalidCredentials without revealing
// whether the email or the password was wrong.
func (s *Store) Authenticate(email, password string) (models.User, error) {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) && u.Password == password {
			return u, nil
		}
	}
	return models.User{}, common.ErrorInvalidCredentials
}

// AddUser appends a new user built from u, generating a fresh id and applying
// defaults for any zero-valued field: name "Anonymous", password
// "password123", role USER, department "Operations". Join date is always
// today and progress always starts at zero.
func (s *Store) AddUser(ctx context.Context, u models.User) (models.User, error) {
	user := models.User{
		ID:         newID(),
		Name:       u.Name,
		Email:      u.Email,
		Password:   u.Password,
		Role:       u.Role,
		Department: u.Department,
		JoinDate:   now().Format("2006-01-02"),
		Progress:   0,
	}
	if user.Name == "" {
		user.Name = "Anonymous"
	}
	if user.Password == "" {
		user.Password = "password123"
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if user.Department == "" {
		user.Department = "Operations"
	}

	s.users = append(s.users, user)
	if err := s.persist(ctx); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// CanDeleteUser reports whether the user with the given id may be deleted.
// It is false only when the target is the last remaining admin; the
// presentation layer uses it to disable the action up front.
func (s *Store) CanDeleteUser(id string) bool {
	var target *models.User
	admins := 0
	for i, u := range s.users {
		if u.IsAdmin() {
			admins++
		}
		if u.ID == id {
			target = &s.users[i]
		}
	}
	if target == nil {
		return false
	}
	return !target.IsAdmin() || admins > 1
}

// DeleteUser removes the user with the given id. Deleting the last remaining
// admin is rejected with common.ErrorLastAdmin so the invariant holds
// regardless of caller. A missing id returns common.ErrorNotFound.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	idx := -1
	admins := 0
	for i, u := range s.users {
		if u.IsAdmin() {
			admins++
		}
		if u.ID == id {
			idx = i
		}
	}
	if idx == -1 {
		return common.ErrorNotFound
	}
	if s.users[idx].IsAdmin() && admins == 1 {
		return common.ErrorLastAdmin
	}

	s.users = append(s.users[:idx], s.users[idx+1:]...)
	return s.persist(ctx)
}

// AddSection appends a new induction section built from sec, generating a
// fresh id and applying defaults: title "Untitled", category Company, empty
// attachment list. The display order is always the current section count
// plus one, regardless of the order values of existing entries, and is never
// renumbered on delete. Last-updated is always now.
func (s *Store) AddSection(ctx context.Context, sec models.InductionSection) (models.InductionSection, error) {
	section := models.InductionSection{
		ID:          newID(),
		Title:       sec.Title,
		Content:     sec.Content,
		Category:    sec.Category,
		LastUpdated: now(),
		Order:       len(s.sections) + 1,
		Attachments: sec.Attachments,
	}
	if section.Title == "" {
		section.Title = "Untitled"
	}
	if section.Category == "" {
		section.Category = models.CategoryCompany
	}
	if section.Attachments == nil {
		section.Attachments = []models.MediaAttachment{}
	}

	s.sections = append(s.sections, section)
	if err := s.persist(ctx); err != nil {
		return models.InductionSection{}, err
	}
	return section, nil
}

// DeleteSection removes the section with the given id. A missing id returns
// common.ErrorNotFound.
func (s *Store) DeleteSection(ctx context.Context, id string) error {
	idx := -1
	for i, sec := range s.sections {
		if sec.ID == id {
			idx = i
		}
	}
	if idx == -1 {
		return common.ErrorNotFound
	}

	s.sections = append(s.sections[:idx], s.sections[idx+1:]...)
	return s.persist(ctx)
}

// Users returns a copy of the users collection.
func (s *Store) Users() []models.User {
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// Sections returns a copy of the sections collection.
func (s *Store) Sections() []models.InductionSection {
	out := make([]models.InductionSection, len(s.sections))
	copy(out, s.sections)
	return out
}

// Reset wipes both persisted blobs in a single transaction, restores the
// seed dataset in memory, and persists it. It is the only way to recover the
// demo state once the non-empty write guard has pinned an old snapshot.
func (s *Store) Reset(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := state.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, usersKey); err != nil {
			return err
		}
		return repo.Delete(ctx, sectionsKey)
	})
	if err != nil {
		return fmt.Errorf("clearing state: %w", err)
	}

	s.users = SeedUsers()
	s.sections = SeedSections()
	return s.persist(ctx)
}
