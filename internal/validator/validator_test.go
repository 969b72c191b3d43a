package validator

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNIM(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"valid", "12345", "12345", false},
		{"trims whitespace", "  12345  ", "12345", false},
		{"empty", "", "", true},
		{"only whitespace", "   ", "", true},
		{"too long", strings.Repeat("9", 51), "", true},
		{"exactly 50", strings.Repeat("9", 50), strings.Repeat("9", 50), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NIM(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NIM(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("NIM(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"valid", "a.b@example.co", "a.b@example.co", false},
		{"lower-cases", "Lecturer@Example.COM", "lecturer@example.com", false},
		{"not an email", "not-an-email", "", true},
		{"empty", "", "", true},
		{"missing tld", "a@b", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Email(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Email(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Email(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"https", "https://example.com/data.csv", false},
		{"http", "http://example.com", false},
		{"ftp", "ftp://x", true},
		{"empty", "", true},
		{"bare host", "example.com", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := URL(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("URL(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"valid", "s3cret-enough", false},
		{"exactly 8", "12345678", false},
		{"too short", "1234567", true},
		{"too long", strings.Repeat("x", 129), true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Password(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Password error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		in      json.Number
		want    int
		wantErr bool
	}{
		{"zero", json.Number("0"), 0, false},
		{"hundred", json.Number("100"), 100, false},
		{"mid", json.Number("85"), 85, false},
		{"negative", json.Number("-1"), 0, true},
		{"over", json.Number("101"), 0, true},
		{"fractional", json.Number("85.5"), 0, true},
		{"not a number", json.Number("abc"), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Score(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Score(%v) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Score(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
