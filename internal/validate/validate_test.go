package validate

import "testing"

func TestPostcode(t *testing.T) {
	good := []string{"", "LS1 4AB", "ls14ab", "SW1A 1AA", "M1 1AE"}
	for _, s := range good {
		if _, ok := Postcode(s); !ok {
			t.Errorf("postcode %q should pass", s)
		}
	}
	bad := []string{"12345", "LS1", "not a postcode", "LS1 4ABC"}
	for _, s := range bad {
		if _, ok := Postcode(s); ok {
			t.Errorf("postcode %q should fail", s)
		}
	}
}

func TestEmail(t *testing.T) {
	if _, ok := Email("manager@nectar.test"); !ok {
		t.Error("valid email rejected")
	}
	for _, s := range []string{"", "nope", "a@b", "spaces in@mail.com"} {
		if _, ok := Email(s); ok {
			t.Errorf("email %q should fail", s)
		}
	}
}

func TestTenancyStatus(t *testing.T) {
	for _, s := range []string{"Verified", "Pending", "Unknown"} {
		if _, ok := TenancyStatus(s); !ok {
			t.Errorf("status %q should pass", s)
		}
	}
	for _, s := range []string{"", "verified", "Active"} {
		if _, ok := TenancyStatus(s); ok {
			t.Errorf("status %q should fail", s)
		}
	}
}

func TestPassword(t *testing.T) {
	if !Password("Passw0rd!") {
		t.Error("complex password rejected")
	}
	for _, s := range []string{"Short1!", "alllowercase1!", "NODIGITS... NO", "NoSymbols123"} {
		if Password(s) {
			t.Errorf("password %q should fail", s)
		}
	}
}
