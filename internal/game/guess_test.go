package game

import "testing"

// TestNormalizeGuess ensures lowercase, diacritic stripping, and trimming.
func TestNormalizeGuess(t *testing.T) {
	tcs := []struct {
		input string
		want  string
	}{
		{input: " yésTerday ", want: "yesterday"},
		{input: "SODA STEREO", want: "soda stereo"},
		{input: "  Música Ligera  ", want: "musica ligera"},
		{input: "Beyoncé", want: "beyonce"},
		{input: "", want: ""},
		{input: "   ", want: ""},
	}
	for _, tc := range tcs {
		if got := NormalizeGuess(tc.input); got != tc.want {
			t.Fatalf("NormalizeGuess(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

// TestGuessMatchesIsAccentInsensitive ensures both sides are normalized.
func TestGuessMatchesIsAccentInsensitive(t *testing.T) {
	if !guessMatches("cancion", "Canción") {
		t.Fatal("expected accent-insensitive match")
	}
	if guessMatches("cancion", "otra cancion") {
		t.Fatal("expected mismatch for different titles")
	}
}
