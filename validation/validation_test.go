package validation

import "testing"

func TestLatinName(t *testing.T) {
	valid := []string{"John", "O'Connor", "Mary Jane", "de la Cruz"}
	for _, name := range valid {
		v := make(Violations)
		LatinName("first_name", name, v)
		if !v.Empty() {
			t.Errorf("%q should be a valid name, got %v", name, v)
		}
	}

	invalid := []string{"John3", "Jöhn", "J@ne", "Иван", "", "John-Paul"}
	for _, name := range invalid {
		v := make(Violations)
		LatinName("first_name", name, v)
		if v["first_name"] != "Please use only Latin characters." {
			t.Errorf("%q should fail with the Latin characters message, got %v", name, v)
		}
	}
}

func TestRequired(t *testing.T) {
	v := make(Violations)
	Required("email", "  ", "Email is required.", v)
	if v["email"] != "Email is required." {
		t.Fatalf("expected required violation, got %v", v)
	}

	v = make(Violations)
	Required("email", "a@b.org", "Email is required.", v)
	if !v.Empty() {
		t.Fatalf("expected no violation, got %v", v)
	}
}

func TestEmail(t *testing.T) {
	v := make(Violations)
	Email("email", "not-an-email", v)
	if _, ok := v["email"]; !ok {
		t.Fatal("expected email violation")
	}

	v = make(Violations)
	Email("email", "rep@example.com", v)
	if !v.Empty() {
		t.Fatalf("expected no violation, got %v", v)
	}
}

func TestAddKeepsFirstViolation(t *testing.T) {
	v := make(Violations)
	v.Add("field", "first")
	v.Add("field", "second")
	if v["field"] != "first" {
		t.Fatalf("expected first violation to win, got %q", v["field"])
	}
}

func TestOneOf(t *testing.T) {
	choices := []string{"Greece", "France"}
	v := make(Violations)
	OneOf("country", "Greece", choices, "Please select one option from the list.", v)
	if !v.Empty() {
		t.Fatalf("expected no violation, got %v", v)
	}

	v = make(Violations)
	OneOf("country", "Atlantis", choices, "Please select one option from the list.", v)
	if v["country"] != "Please select one option from the list." {
		t.Fatalf("expected choice violation, got %v", v)
	}
}
