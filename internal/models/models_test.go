package models

import "testing"

func TestUsernameFromEmail(t *testing.T) {
	a := UsernameFromEmail("rep@example.com")
	b := UsernameFromEmail("rep@example.com")
	if a != b {
		t.Fatal("username derivation must be deterministic")
	}
	if a == UsernameFromEmail("other@example.com") {
		t.Fatal("different emails must produce different usernames")
	}
	// sha1 digest is 20 bytes -> 27 chars of unpadded url-safe base64
	if len(a) != 27 {
		t.Fatalf("unexpected username length %d: %q", len(a), a)
	}
	for _, c := range a {
		if c == '=' || c == '+' || c == '/' {
			t.Fatalf("username must be url-safe without padding: %q", a)
		}
	}
}

func TestFullName(t *testing.T) {
	u := User{FirstName: "Jane", LastName: "Doe"}
	if u.FullName() != "Jane Doe" {
		t.Fatalf("unexpected full name %q", u.FullName())
	}
	if (User{FirstName: "Jane"}).FullName() != "Jane" {
		t.Fatal("missing last name should collapse")
	}
	if (User{LastName: "Doe"}).FullName() != "Doe" {
		t.Fatal("missing first name should collapse")
	}
}

func TestInGroup(t *testing.T) {
	u := User{Groups: []Group{{Name: GroupAdmin}, {Name: GroupRep}}}
	if !u.InGroup(GroupAdmin) || !u.InGroup(GroupRep) {
		t.Fatal("expected membership")
	}
	if u.InGroup(GroupAlumni) {
		t.Fatal("unexpected membership")
	}
}

func TestPermissionCode(t *testing.T) {
	p := Permission{ResourceType: "featuredrep", Action: "create"}
	if p.Code() != "featuredrep:create" {
		t.Fatalf("unexpected code %q", p.Code())
	}
}
