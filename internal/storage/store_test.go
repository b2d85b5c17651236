package storage

import "testing"

func TestServiceKeyRoundTrip(t *testing.T) {
	key := ServiceKey("2026-08-23", "Sunday Morning")
	if key != "gbc_service_2026-08-23_Sunday Morning" {
		t.Fatalf("key = %q", key)
	}
	date, svc, ok := ParseServiceKey(key)
	if !ok || date != "2026-08-23" || svc != "Sunday Morning" {
		t.Fatalf("parse = (%q, %q, %v)", date, svc, ok)
	}
}

func TestParseServiceKeySeparatorInServiceType(t *testing.T) {
	// service type may itself contain the separator character
	key := ServiceKey("2026-01-04", "Prayer_Meeting (Wed)")
	date, svc, ok := ParseServiceKey(key)
	if !ok || date != "2026-01-04" || svc != "Prayer_Meeting (Wed)" {
		t.Fatalf("parse = (%q, %q, %v)", date, svc, ok)
	}
}

func TestParseServiceKeyRejectsMalformed(t *testing.T) {
	cases := []string{
		"gbc_members",
		"gbc_service_",
		"gbc_service_notadate_Sunday Morning",
		"gbc_service_2026-08-23",
		"gbc_service_2026-08-23Sunday",
		"other_2026-08-23_Sunday Morning",
	}
	for _, key := range cases {
		if _, _, ok := ParseServiceKey(key); ok {
			t.Fatalf("expected %q to be rejected", key)
		}
	}
}
