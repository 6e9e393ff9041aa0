package common

import (
	"sync"
	"testing"
)

func TestNormalizeUsername(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"@Alice", "alice"},
		{"BOB", "bob"},
		{"  @Carol  ", "carol"},
		{"dave", "dave"},
		{"@", ""},
		{"", ""},
	}

	for _, c := range cases {
		if got := NormalizeUsername(c.in); got != c.want {
			t.Errorf("NormalizeUsername(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCapitalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ada lovelace", "Ada Lovelace"},
		{"GRACE HOPPER", "Grace Hopper"},
		{" alan ", "Alan"},
	}

	for _, c := range cases {
		if got := CapitalizeName(c.in); got != c.want {
			t.Errorf("CapitalizeName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCapitalizeNameConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if got := CapitalizeName("ada lovelace"); got != "Ada Lovelace" {
					t.Errorf("CapitalizeName = %q, want %q", got, "Ada Lovelace")
				}
			}
		}()
	}
	wg.Wait()
}
