package validation

import (
	"strings"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	v := NewAuthRequestValidator()

	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid", email: "user@example.com", wantErr: false},
		{name: "valid with plus", email: "user+tag@example.co.uk", wantErr: false},
		{name: "empty", email: "", wantErr: true},
		{name: "missing at", email: "userexample.com", wantErr: true},
		{name: "missing domain", email: "user@", wantErr: true},
		{name: "missing tld", email: "user@example", wantErr: true},
		{name: "spaces", email: "user @example.com", wantErr: true},
		{name: "too long", email: strings.Repeat("a", 250) + "@example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateEmail(tt.email)
			if tt.wantErr && err == nil {
				t.Errorf("Expected error for %q", tt.email)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected error for %q: %v", tt.email, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	v := NewAuthRequestValidator()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid", password: "secret123", wantErr: false},
		{name: "minimum length", password: "123456", wantErr: false},
		{name: "empty", password: "", wantErr: true},
		{name: "too short", password: "12345", wantErr: true},
		{name: "too long", password: strings.Repeat("a", 129), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidatePassword(tt.password)
			if tt.wantErr && err == nil {
				t.Error("Expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestValidateRegisterRequest(t *testing.T) {
	v := NewAuthRequestValidator()

	if err := v.ValidateRegisterRequest("Jane", "Doe", "jane@example.com", "secret123"); err != nil {
		t.Errorf("Expected valid request, got: %v", err)
	}

	if err := v.ValidateRegisterRequest("", "Doe", "jane@example.com", "secret123"); err == nil {
		t.Error("Expected error for empty first name")
	}

	if err := v.ValidateRegisterRequest("Jane", "", "jane@example.com", "secret123"); err == nil {
		t.Error("Expected error for empty last name")
	}

	if err := v.ValidateRegisterRequest("Jane", "Doe", "not-an-email", "secret123"); err == nil {
		t.Error("Expected error for invalid email")
	}

	if err := v.ValidateRegisterRequest("Jane", "Doe", "jane@example.com", "123"); err == nil {
		t.Error("Expected error for weak password")
	}
}

func TestValidateLoginRequest(t *testing.T) {
	v := NewAuthRequestValidator()

	if err := v.ValidateLoginRequest("jane@example.com", "secret123"); err != nil {
		t.Errorf("Expected valid request, got: %v", err)
	}
	if err := v.ValidateLoginRequest("", "secret123"); err == nil {
		t.Error("Expected error for empty email")
	}
	if err := v.ValidateLoginRequest("jane@example.com", ""); err == nil {
		t.Error("Expected error for empty password")
	}
}
