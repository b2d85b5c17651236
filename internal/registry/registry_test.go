package registry

import (
	"errors"
	"testing"

	"offertory/internal/core"
	"offertory/internal/storage/memory"
)

func memberWithCode(code string, t core.MemberType) core.Member {
	return core.Member{ID: "id-" + code, Name: "X, Y", Code: code, Type: t}
}

func TestNextCodeFrom(t *testing.T) {
	cases := []struct {
		name    string
		typ     core.MemberType
		members []core.Member
		want    string
	}{
		{"empty registry", core.MemberTypeMember, nil, "M0001"},
		{"empty registry non-member", core.MemberTypeNonMember, nil, "N0001"},
		{
			"gap fill",
			core.MemberTypeMember,
			[]core.Member{memberWithCode("M0001", core.MemberTypeMember), memberWithCode("M0003", core.MemberTypeMember)},
			"M0002",
		},
		{
			"no gap appends",
			core.MemberTypeMember,
			[]core.Member{memberWithCode("M0001", core.MemberTypeMember), memberWithCode("M0002", core.MemberTypeMember)},
			"M0003",
		},
		{
			"other type ignored",
			core.MemberTypeMember,
			[]core.Member{memberWithCode("N0001", core.MemberTypeNonMember)},
			"M0001",
		},
		{
			"mis-typed member with matching prefix still counts",
			core.MemberTypeMember,
			[]core.Member{memberWithCode("M0001", core.MemberTypeNonMember)},
			"M0002",
		},
		{
			"non-numeric suffix discarded",
			core.MemberTypeMember,
			[]core.Member{memberWithCode("MXXXX", core.MemberTypeMember), memberWithCode("M0001", core.MemberTypeMember)},
			"M0002",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NextCodeFrom(tc.typ, tc.members); got != tc.want {
				t.Fatalf("NextCodeFrom = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCreate(t *testing.T) {
	reg := New(memory.New())

	m, err := reg.Create("Doe", "John", "A", core.MemberTypeMember, "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if m.Name != "Doe, John A." {
		t.Fatalf("name = %q", m.Name)
	}
	if m.Code != "M0001" {
		t.Fatalf("code = %q", m.Code)
	}
	if m.ID == "" {
		t.Fatal("id not assigned")
	}

	all, err := reg.All()
	if err != nil || len(all) != 1 {
		t.Fatalf("all = %v, %v", all, err)
	}
}

func TestCreateBlankLastName(t *testing.T) {
	reg := New(memory.New())
	if _, err := reg.Create("  ", "John", "", core.MemberTypeMember, ""); !errors.Is(err, core.ErrBlankLastName) {
		t.Fatalf("err = %v, want ErrBlankLastName", err)
	}
	all, _ := reg.All()
	if len(all) != 0 {
		t.Fatalf("failed create mutated registry: %v", all)
	}
}

func TestCreateDuplicateCode(t *testing.T) {
	reg := New(memory.New())
	if _, err := reg.Create("Doe", "John", "", core.MemberTypeMember, "M0007"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// collision across types is still a collision
	_, err := reg.Create("Cruz", "Ana", "", core.MemberTypeNonMember, "M0007")
	if !errors.Is(err, core.ErrDuplicateCode) {
		t.Fatalf("err = %v, want ErrDuplicateCode", err)
	}
	all, _ := reg.All()
	if len(all) != 1 {
		t.Fatalf("failed create mutated registry: %v", all)
	}
}

func TestUpdate(t *testing.T) {
	reg := New(memory.New())
	a, _ := reg.Create("Doe", "John", "", core.MemberTypeMember, "")
	b, _ := reg.Create("Cruz", "Ana", "", core.MemberTypeMember, "")

	// keeping your own code is fine
	a.Name = "Doe, Johnny"
	if err := reg.Update(a); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := reg.Get(a.ID)
	if got.Name != "Doe, Johnny" {
		t.Fatalf("name = %q", got.Name)
	}

	// stealing another member's code is not
	b.Code = a.Code
	if err := reg.Update(b); !errors.Is(err, core.ErrDuplicateCode) {
		t.Fatalf("err = %v, want ErrDuplicateCode", err)
	}
}

func TestDelete(t *testing.T) {
	reg := New(memory.New())
	m, _ := reg.Create("Doe", "John", "", core.MemberTypeMember, "")

	if err := reg.Delete(m.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := reg.Get(m.ID); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := reg.Delete("nope"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestReplaceAllAssignsIDs(t *testing.T) {
	reg := New(memory.New())
	err := reg.ReplaceAll([]core.Member{
		{Name: "Doe, John", Code: "M0001", Type: core.MemberTypeMember},
		{ID: "keep-me", Name: "Cruz, Ana", Code: "N0001", Type: core.MemberTypeNonMember},
	})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	all, _ := reg.All()
	if len(all) != 2 {
		t.Fatalf("all = %v", all)
	}
	if all[0].ID == "" {
		t.Fatal("missing id not assigned")
	}
	if all[1].ID != "keep-me" {
		t.Fatalf("existing id replaced: %q", all[1].ID)
	}
}
