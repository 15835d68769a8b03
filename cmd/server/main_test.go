package main

import "testing"

func TestIsWeakSecret(t *testing.T) {
	cases := map[string]bool{
		"short":                                      true,
		"change-me-change-me-change-me-change-me-01": true,
		"Q3v9xLk2mW8pR4tZ7nB1cY6hJ0dF5gS2aE9uK3oI": false,
	}
	for secret, want := range cases {
		if got := isWeakSecret(secret); got != want {
			t.Fatalf("isWeakSecret(%q) want %v got %v", secret, want, got)
		}
	}
}
