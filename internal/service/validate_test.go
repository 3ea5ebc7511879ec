package service

import (
	"errors"
	"testing"
)

func TestValidateInputReportsFirstDeclaredField(t *testing.T) {
	// 多个字段同时非法时，始终报告声明顺序里的第一个
	input := ContactInput{Fullname: "", Email: "bad", Message: "hi"}

	err := validateInput(input)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if got := InputMessage(err); got != "Fullname is required" {
		t.Fatalf("expected first-field message, got %q", got)
	}
}

func TestValidateInputEmailMessage(t *testing.T) {
	input := ContactInput{Fullname: "Jane Doe", Email: "bad", Message: "A long enough message."}

	err := validateInput(input)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if got := InputMessage(err); got != "Invalid email address" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestValidateInputMinCharactersMessage(t *testing.T) {
	input := ContactInput{Fullname: "Jane Doe", Email: "jane@example.com", Message: "short"}

	err := validateInput(input)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if got := InputMessage(err); got != "Message must be at least 10 characters" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestValidateInputPassesValidContact(t *testing.T) {
	input := ContactInput{Fullname: "Jane Doe", Email: "jane@example.com", Message: "A long enough message."}

	if err := validateInput(input); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
}

func TestFieldLabel(t *testing.T) {
	tests := []struct {
		field    string
		expected string
	}{
		{"Title", "Title"},
		{"JobTitle", "Job title"},
		{"IconURL", "Icon URL"},
		{"MetaDescription", "Meta description"},
		{"Fullname", "Fullname"},
	}

	for _, tt := range tests {
		if got := fieldLabel(tt.field); got != tt.expected {
			t.Fatalf("fieldLabel(%q) = %q, expected %q", tt.field, got, tt.expected)
		}
	}
}
