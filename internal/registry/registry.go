// Package registry owns member identity records: creation with
// gap-filling code assignment, edits, deletion and bulk replacement.
package registry

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"offertory/internal/core"
	"offertory/internal/storage"
)

// Registry reads and writes the member list through an injected Store.
// The whole list lives under one key as a JSON array, saved wholesale.
type Registry struct {
	store storage.Store
}

func New(store storage.Store) *Registry {
	return &Registry{store: store}
}

// All returns every member, empty when nothing has been saved yet.
func (r *Registry) All() ([]core.Member, error) {
	raw, ok, err := r.store.Get(storage.MembersKey)
	if err != nil {
		return nil, fmt.Errorf("load members: %w", err)
	}
	if !ok {
		return []core.Member{}, nil
	}
	var members []core.Member
	if err := json.Unmarshal([]byte(raw), &members); err != nil {
		return nil, fmt.Errorf("decode members: %w", err)
	}
	return members, nil
}

// Get looks a member up by id. A missing id yields core.ErrNotFound;
// callers showing transaction rows fall back to blank for orphans.
func (r *Registry) Get(id string) (core.Member, error) {
	members, err := r.All()
	if err != nil {
		return core.Member{}, err
	}
	for _, m := range members {
		if m.ID == id {
			return m, nil
		}
	}
	return core.Member{}, core.ErrNotFound
}

// NextCode proposes the next free code for a member type.
func (r *Registry) NextCode(t core.MemberType) (string, error) {
	members, err := r.All()
	if err != nil {
		return "", err
	}
	return NextCodeFrom(t, members), nil
}

var nonDigits = regexp.MustCompile(`\D`)

// NextCodeFrom finds the first unused number for the type's prefix and
// formats it zero-padded to four digits. Candidates are members of the
// same type or whose code already starts with the matching prefix — the
// double filter keeps a mis-typed member with a right-looking code from
// causing a collision. Numbering fills gaps before appending: with
// M0001 and M0003 present the next code is M0002.
func NextCodeFrom(t core.MemberType, members []core.Member) string {
	prefix := t.Prefix()

	var numbers []int
	for _, m := range members {
		if m.Type != t && !strings.HasPrefix(m.Code, prefix) {
			continue
		}
		numStr := nonDigits.ReplaceAllString(m.Code, "")
		n, err := strconv.Atoi(numStr)
		if err != nil {
			continue
		}
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	expected := 1
	for _, n := range numbers {
		if n != expected {
			break
		}
		expected++
	}
	return fmt.Sprintf("%s%04d", prefix, expected)
}

// Create validates, formats the canonical name and appends a new member.
// A blank last name fails with core.ErrBlankLastName; a code already in
// use anywhere in the registry, regardless of type, fails with
// core.ErrDuplicateCode. Nothing is persisted on failure. An empty code
// is auto-assigned.
func (r *Registry) Create(last, first, middleInitial string, t core.MemberType, code string) (core.Member, error) {
	if strings.TrimSpace(last) == "" {
		return core.Member{}, core.ErrBlankLastName
	}

	members, err := r.All()
	if err != nil {
		return core.Member{}, err
	}

	code = strings.TrimSpace(code)
	if code == "" {
		code = NextCodeFrom(t, members)
	}
	for _, m := range members {
		if m.Code == code {
			return core.Member{}, fmt.Errorf("code %q: %w", code, core.ErrDuplicateCode)
		}
	}

	member := core.Member{
		ID:   uuid.NewString(),
		Name: core.FormatName(last, first, middleInitial),
		Code: code,
		Type: t,
	}
	if err := r.save(append(members, member)); err != nil {
		return core.Member{}, err
	}
	slog.Info("Member created", "code", member.Code, "type", member.Type)
	return member, nil
}

// Update replaces a member in place. The new code must not collide with
// a different member's code.
func (r *Registry) Update(member core.Member) error {
	if err := member.Validate(); err != nil {
		return err
	}
	members, err := r.All()
	if err != nil {
		return err
	}
	idx := -1
	for i, m := range members {
		if m.Code == member.Code && m.ID != member.ID {
			return fmt.Errorf("code %q: %w", member.Code, core.ErrDuplicateCode)
		}
		if m.ID == member.ID {
			idx = i
		}
	}
	if idx < 0 {
		return core.ErrNotFound
	}
	members[idx] = member
	return r.save(members)
}

// Delete removes a member. Persisted transactions referencing the id are
// left alone; the orphaned reference is tolerated at display time.
func (r *Registry) Delete(id string) error {
	members, err := r.All()
	if err != nil {
		return err
	}
	kept := members[:0]
	for _, m := range members {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(members) {
		return core.ErrNotFound
	}
	return r.save(kept)
}

// ReplaceAll swaps the entire registry for the given list in one write,
// the import path. Records lacking an id get one assigned first.
func (r *Registry) ReplaceAll(members []core.Member) error {
	for i := range members {
		if members[i].ID == "" {
			members[i].ID = uuid.NewString()
		}
	}
	if err := r.save(members); err != nil {
		return err
	}
	slog.Info("Registry replaced", "count", len(members))
	return nil
}

func (r *Registry) save(members []core.Member) error {
	data, err := json.Marshal(members)
	if err != nil {
		return fmt.Errorf("encode members: %w", err)
	}
	if err := r.store.Set(storage.MembersKey, string(data)); err != nil {
		return fmt.Errorf("save members: %w", err)
	}
	return nil
}
