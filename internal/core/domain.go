package core

import (
	"errors"
	"regexp"
	"strings"
)

const (
	MemberTypeMember    MemberType = "Member"
	MemberTypeNonMember MemberType = "Non-Member"
)

const (
	PayerMember    PayerType = "Member"
	PayerNonMember PayerType = "Non-Member"
	PayerGuest     PayerType = "Guest"
)

type (
	// MemberType distinguishes registered members from tracked non-members.
	MemberType string

	// PayerType identifies which giving panel a transaction belongs to.
	PayerType string

	Member struct {
		ID   string     `json:"id"`
		Name string     `json:"name"`
		Code string     `json:"code"`
		Type MemberType `json:"type"`
	}
)

var (
	ErrBlankLastName  = errors.New("last name is required")
	ErrDuplicateCode  = errors.New("code already exists")
	ErrMissingDate    = errors.New("please select a date")
	ErrNotFound       = errors.New("record not found")
	ErrImportInFlight = errors.New("import already in progress")
)

// CodePattern is the canonical shape of an assigned member code:
// the type prefix followed by a four digit number, e.g. M0001 or N0145.
var CodePattern = regexp.MustCompile(`^[MN]\d{4}$`)

// Prefix returns the code prefix for a member type.
func (t MemberType) Prefix() string {
	if t == MemberTypeNonMember {
		return "N"
	}
	return "M"
}

// FormatName builds the canonical "Last, First M." display name.
// The middle initial is optional and gets a trailing period when present.
func FormatName(last, first, middleInitial string) string {
	name := strings.TrimSpace(last) + ", " + strings.TrimSpace(first)
	if mi := strings.TrimSpace(middleInitial); mi != "" {
		name += " " + mi + "."
	}
	return name
}

func (m Member) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrBlankLastName
	}
	return nil
}
