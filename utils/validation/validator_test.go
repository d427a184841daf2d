package validation

import "testing"

func TestIsInstitutionalEmail(t *testing.T) {
	const domain = "@ulima.edu.pe"

	cases := []struct {
		email string
		want  bool
	}{
		{"jane@ulima.edu.pe", true},
		{"JANE@ULIMA.EDU.PE", true},
		{"jane.doe+notas@ulima.edu.pe", true},
		{"jane@gmail.com", false},
		{"jane@ulima.edu.pe.evil.com", false},
		{"jane@fakeulima.edu.pe", false},
		{"", false},
		{"@ulima.edu.pe", false},
	}

	for _, c := range cases {
		if got := IsInstitutionalEmail(c.email, domain); got != c.want {
			t.Errorf("IsInstitutionalEmail(%q) = %v, want %v", c.email, got, c.want)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"user@ulima.edu.pe",
		"first.last@example.com",
		"a+b@domain.io",
	}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("expected %q to be a valid email", email)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"@missing-local.org",
		"user@",
		"user@nodot",
	}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("expected %q to be rejected", email)
		}
	}
}

func TestValidateStruct(t *testing.T) {
	type registerForm struct {
		FullName string `validate:"required,min=2"`
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=6"`
	}

	v := NewValidator()

	ok := registerForm{FullName: "Ana Torres", Email: "ana@ulima.edu.pe", Password: "secret1"}
	if err := v.ValidateStruct(ok); err != nil {
		t.Errorf("expected valid struct to pass, got %v", err)
	}

	bad := registerForm{FullName: "A", Email: "not-an-email", Password: "123"}
	err := v.ValidateStruct(bad)
	if err == nil {
		t.Fatal("expected validation errors")
	}

	fields := FormatValidationErrors(err)
	for _, field := range []string{"fullname", "email", "password"} {
		if _, ok := fields[field]; !ok {
			t.Errorf("expected a validation message for %s, got %v", field, fields)
		}
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  hola  "); got != "hola" {
		t.Errorf("expected trimmed string, got %q", got)
	}
}
