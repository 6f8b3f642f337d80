package utils

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRandString(t *testing.T) {
	s := RandString(128)

	if len(s) != 128 {
		t.Error("Expected length 128, got", len(s))
	}

	for _, c := range s {
		if !strings.ContainsRune(letterBytes, c) {
			t.Error("Unexpected character:", string(c))
		}
	}

	if RandString(32) == RandString(32) {
		t.Error("Two random strings should not collide")
	}
}

func TestRandHex(t *testing.T) {
	s := RandHex(16)

	// 16 bytes hex encoded
	if len(s) != 32 {
		t.Error("Expected length 32, got", len(s))
	}
}

func TestGetPage(t *testing.T) {
	r := httptest.NewRequest("GET", "/bots/all", nil)

	page, err := GetPage(r)

	if err != nil || page != 1 {
		t.Error("Expected page 1 on absence, got", page, err)
	}

	r = httptest.NewRequest("GET", "/bots/all?page=3", nil)

	page, err = GetPage(r)

	if err != nil || page != 3 {
		t.Error("Expected page 3, got", page, err)
	}

	r = httptest.NewRequest("GET", "/bots/all?page=0", nil)

	page, err = GetPage(r)

	if err != nil || page != 1 {
		t.Error("Expected page 0 to clamp to 1, got", page, err)
	}

	r = httptest.NewRequest("GET", "/bots/all?page=junk", nil)

	_, err = GetPage(r)

	if err == nil {
		t.Error("Expected an error for a non-numeric page")
	}
}
