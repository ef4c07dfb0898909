// Package profilestore orchestrates profile CRUD over the durable key-value
// store: an ordered id index, a current-profile pointer, and one serialized
// record per profile. All progress values are derived elsewhere; this package
// only moves profiles in and out of persistence.
package profilestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/coursecompass/compass/internal/domain/profile"
	"github.com/coursecompass/compass/pkg/clock"
	"github.com/coursecompass/compass/pkg/logger"
)

// Persistence key layout: one ordered id index, one current-id scalar, and
// one record per profile id.
const (
	keyIndex         = "profiles-list"
	keyCurrent       = "current-profile"
	keyProfilePrefix = "profile-"
)

var (
	// ErrNoCurrentProfile - no profile is currently selected.
	ErrNoCurrentProfile = errors.New("no current profile selected")
)

// ProfileStore is the single writer over persisted profile state.
type ProfileStore struct {
	store profile.Store
	clk   clock.Clock
	log   *logger.Logger
}

// New creates a ProfileStore over the given backend.
func New(store profile.Store, clk clock.Clock, log *logger.Logger) *ProfileStore {
	if log == nil {
		log = logger.Default()
	}
	return &ProfileStore{store: store, clk: clk, log: log}
}

// ─────────────────────────────────────────────────────────────────────────────
// Reads
// ─────────────────────────────────────────────────────────────────────────────

// List returns every profile in index order. Records that are missing or
// unparseable are skipped rather than failing the whole list; legacy
// single-major records are upgraded and re-persisted on the way through.
func (s *ProfileStore) List(ctx context.Context) ([]*profile.StudentProfile, error) {
	ids, err := s.readIndex(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]*profile.StudentProfile, 0, len(ids))
	for _, id := range ids {
		p, err := s.readProfile(ctx, id)
		if err != nil {
			s.log.Warn("skipping unreadable profile record", logger.ProfileID(id), logger.Err(err))
			continue
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// Get returns one profile by id.
func (s *ProfileStore) Get(ctx context.Context, id string) (*profile.StudentProfile, error) {
	p, err := s.readProfile(ctx, id)
	if err != nil {
		return nil, profile.ErrProfileNotFound
	}
	return p, nil
}

// Current returns the currently selected profile, or ErrNoCurrentProfile.
func (s *ProfileStore) Current(ctx context.Context) (*profile.StudentProfile, error) {
	id, err := s.readCurrentID(ctx)
	if err != nil || id == "" {
		return nil, ErrNoCurrentProfile
	}
	p, err := s.readProfile(ctx, id)
	if err != nil {
		return nil, ErrNoCurrentProfile
	}
	return p, nil
}

// CurrentID returns the current profile id, or "" when none is selected.
func (s *ProfileStore) CurrentID(ctx context.Context) string {
	id, _ := s.readCurrentID(ctx)
	return id
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutations
// ─────────────────────────────────────────────────────────────────────────────

// Create validates and persists a new profile, appends it to the index, and
// switches the current pointer to it.
func (s *ProfileStore) Create(ctx context.Context, params profile.NewProfileParams) (*profile.StudentProfile, error) {
	p, err := profile.NewProfile(params, s.clk.Now())
	if err != nil {
		return nil, err
	}

	if err := s.writeProfile(ctx, p); err != nil {
		return nil, err
	}

	ids, err := s.readIndex(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.writeIndex(ctx, append(ids, p.ID)); err != nil {
		return nil, err
	}

	if err := s.writeCurrentID(ctx, p.ID); err != nil {
		return nil, err
	}

	s.log.Info("profile created", logger.ProfileID(p.ID), logger.ProfileName(p.Name))
	return p, nil
}

// Update shallow-merges the non-nil fields into the profile and re-persists
// it. Nil slice fields leave the existing lists untouched.
func (s *ProfileStore) Update(ctx context.Context, id string, updates Update) (*profile.StudentProfile, error) {
	p, err := s.readProfile(ctx, id)
	if err != nil {
		return nil, profile.ErrProfileNotFound
	}

	updates.apply(p)

	if err := s.writeProfile(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes the profile from the index and deletes its record. When the
// deleted profile was current, the first remaining profile becomes current,
// or the pointer is cleared if none remain.
func (s *ProfileStore) Delete(ctx context.Context, id string) error {
	ids, err := s.readIndex(ctx)
	if err != nil {
		return err
	}

	remaining := make([]string, 0, len(ids))
	found := false
	for _, existing := range ids {
		if existing == id {
			found = true
			continue
		}
		remaining = append(remaining, existing)
	}
	if !found {
		return profile.ErrProfileNotFound
	}

	if err := s.store.Remove(ctx, keyProfilePrefix+id); err != nil {
		return fmt.Errorf("removing profile record: %w", err)
	}
	if err := s.writeIndex(ctx, remaining); err != nil {
		return err
	}

	if current, _ := s.readCurrentID(ctx); current == id {
		next := ""
		if len(remaining) > 0 {
			next = remaining[0]
		}
		if err := s.writeCurrentID(ctx, next); err != nil {
			return err
		}
	}

	s.log.Info("profile deleted", logger.ProfileID(id))
	return nil
}

// Switch sets the current profile pointer. The target must exist.
func (s *ProfileStore) Switch(ctx context.Context, id string) error {
	if _, err := s.readProfile(ctx, id); err != nil {
		return profile.ErrProfileNotFound
	}
	return s.writeCurrentID(ctx, id)
}

// AddCompletedCourse appends a course to the current profile's completed
// list. Adding a code that is already present is a silent no-op; the return
// value reports whether the list changed.
func (s *ProfileStore) AddCompletedCourse(ctx context.Context, c profile.CompletedCourse) (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}

	p, err := s.Current(ctx)
	if err != nil {
		return false, err
	}

	if !p.AddCompletedCourse(c) {
		return false, nil
	}
	if err := s.writeProfile(ctx, p); err != nil {
		return false, err
	}
	s.log.Debug("course added", logger.ProfileID(p.ID), logger.CourseCode(c.Code))
	return true, nil
}

// RemoveCompletedCourse removes a completed course from the current profile
// by code.
func (s *ProfileStore) RemoveCompletedCourse(ctx context.Context, code string) (bool, error) {
	p, err := s.Current(ctx)
	if err != nil {
		return false, err
	}

	if !p.RemoveCompletedCourse(code) {
		return false, nil
	}
	if err := s.writeProfile(ctx, p); err != nil {
		return false, err
	}
	s.log.Debug("course removed", logger.ProfileID(p.ID), logger.CourseCode(code))
	return true, nil
}

// AddCurrentCourse appends an in-progress course to the current profile.
func (s *ProfileStore) AddCurrentCourse(ctx context.Context, c profile.CompletedCourse) (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}

	p, err := s.Current(ctx)
	if err != nil {
		return false, err
	}

	if !p.AddCurrentCourse(c) {
		return false, nil
	}
	if err := s.writeProfile(ctx, p); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveCurrentCourse removes an in-progress course from the current profile
// by code.
func (s *ProfileStore) RemoveCurrentCourse(ctx context.Context, code string) (bool, error) {
	p, err := s.Current(ctx)
	if err != nil {
		return false, err
	}

	if !p.RemoveCurrentCourse(code) {
		return false, nil
	}
	if err := s.writeProfile(ctx, p); err != nil {
		return false, err
	}
	return true, nil
}

// UpdateGenEdChecks merges partial checklist toggles into the current
// profile.
func (s *ProfileStore) UpdateGenEdChecks(ctx context.Context, updates profile.GenEdCheckUpdates) (*profile.StudentProfile, error) {
	p, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	p.GenEdChecks = p.GenEdChecks.Apply(updates)
	if err := s.writeProfile(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Partial update
// ─────────────────────────────────────────────────────────────────────────────

// Update is a partial profile change; nil fields are untouched.
type Update struct {
	Name           *string
	Majors         []string
	Emphasis       *string
	Interests      *string
	CatalogYear    *string
	PlanSemester   *string
	SelectedMinors []string

	// Course list replacements; nil leaves the existing list alone.
	CompletedCourses []profile.CompletedCourse
	CurrentCourses   []profile.CompletedCourse
}

func (u Update) apply(p *profile.StudentProfile) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Majors != nil {
		p.Majors = append([]string(nil), u.Majors...)
	}
	if u.Emphasis != nil {
		p.Emphasis = *u.Emphasis
	}
	if u.Interests != nil {
		p.Interests = *u.Interests
	}
	if u.CatalogYear != nil {
		p.CatalogYear = *u.CatalogYear
	}
	if u.PlanSemester != nil {
		p.PlanSemester = *u.PlanSemester
	}
	if u.SelectedMinors != nil {
		p.SelectedMinors = append([]string(nil), u.SelectedMinors...)
	}
	if u.CompletedCourses != nil {
		p.CompletedCourses = append([]profile.CompletedCourse(nil), u.CompletedCourses...)
	}
	if u.CurrentCourses != nil {
		p.CurrentCourses = append([]profile.CompletedCourse(nil), u.CurrentCourses...)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Persistence helpers
// ─────────────────────────────────────────────────────────────────────────────

func (s *ProfileStore) readIndex(ctx context.Context) ([]string, error) {
	data, err := s.store.Get(ctx, keyIndex)
	if err != nil {
		if errors.Is(err, profile.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading profile index: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		// Malformed index is treated as empty.
		return nil, nil
	}
	return ids, nil
}

func (s *ProfileStore) writeIndex(ctx context.Context, ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encoding profile index: %w", err)
	}
	if err := s.store.Set(ctx, keyIndex, data); err != nil {
		return fmt.Errorf("writing profile index: %w", err)
	}
	return nil
}

func (s *ProfileStore) readCurrentID(ctx context.Context) (string, error) {
	data, err := s.store.Get(ctx, keyCurrent)
	if err != nil {
		return "", err
	}
	var id string
	if err := json.Unmarshal(data, &id); err != nil {
		return "", nil
	}
	return id, nil
}

func (s *ProfileStore) writeCurrentID(ctx context.Context, id string) error {
	if id == "" {
		return s.store.Remove(ctx, keyCurrent)
	}
	data, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("encoding current profile id: %w", err)
	}
	return s.store.Set(ctx, keyCurrent, data)
}

// readProfile loads one record, applying the single-major upgrade and
// re-persisting exactly once when the stored shape is outdated.
func (s *ProfileStore) readProfile(ctx context.Context, id string) (*profile.StudentProfile, error) {
	data, err := s.store.Get(ctx, keyProfilePrefix+id)
	if err != nil {
		return nil, err
	}

	p, migrated, err := profile.DecodeRecord(data)
	if err != nil {
		return nil, err
	}
	if migrated {
		s.log.Info("migrated profile record to current schema", logger.ProfileID(id))
		if err := s.writeProfile(ctx, p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (s *ProfileStore) writeProfile(ctx context.Context, p *profile.StudentProfile) error {
	data, err := profile.EncodeRecord(p)
	if err != nil {
		return fmt.Errorf("encoding profile %s: %w", p.ID, err)
	}
	if err := s.store.Set(ctx, keyProfilePrefix+p.ID, data); err != nil {
		return fmt.Errorf("writing profile %s: %w", p.ID, err)
	}
	return nil
}
