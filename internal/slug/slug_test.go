package slug

import (
	"errors"
	"testing"
)

// TestGenerate exercises the slug generator with typical titles, special
// characters, and boundary conditions.
func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple two words",
			input: "Hello World",
			want:  "hello-world",
		},
		{
			name:  "title with year",
			input: "Hello World 2026",
			want:  "hello-world-2026",
		},
		{
			name:  "punctuation marks",
			input: "Hello, World! How's it going?",
			want:  "hello-world-hows-it-going",
		},
		{
			name:  "ampersand and at sign",
			input: "Rock & Roll @ the Arena",
			want:  "rock-roll-the-arena",
		},
		{
			name:  "leading and trailing whitespace",
			input: "   padded title   ",
			want:  "padded-title",
		},
		{
			name:  "consecutive separators collapse",
			input: "a -- b --- c",
			want:  "a-b-c",
		},
		{
			name:  "only special characters",
			input: "!!!???",
			want:  "",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "already a slug",
			input: "already-a-slug",
			want:  "already-a-slug",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.input); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestUniqueFreeBase(t *testing.T) {
	got, err := Unique("about", func(string) (bool, error) { return false, nil })
	if err != nil {
		t.Fatalf("Unique: %v", err)
	}
	if got != "about" {
		t.Errorf("got %q, want %q", got, "about")
	}
}

func TestUniqueSuffixes(t *testing.T) {
	taken := map[string]bool{"about": true, "about-2": true}
	got, err := Unique("about", func(c string) (bool, error) { return taken[c], nil })
	if err != nil {
		t.Fatalf("Unique: %v", err)
	}
	if got != "about-3" {
		t.Errorf("got %q, want %q", got, "about-3")
	}
}

func TestUniquePropagatesError(t *testing.T) {
	boom := errors.New("db down")
	_, err := Unique("about", func(string) (bool, error) { return false, boom })
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped lookup error, got %v", err)
	}
	if errors.Is(err, ErrExhausted) {
		t.Error("lookup failure must not read as exhaustion")
	}
}

func TestUniqueExhausted(t *testing.T) {
	calls := 0
	_, err := Unique("about", func(string) (bool, error) {
		calls++
		return true, nil
	})
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("expected ErrExhausted when every candidate is taken, got %v", err)
	}
	if calls != MaxDedupeAttempts {
		t.Errorf("lookups: got %d, want %d", calls, MaxDedupeAttempts)
	}
}
