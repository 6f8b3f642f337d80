package utils

import (
	"crypto/rand"
	"encoding/hex"
)

const letterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandString returns a cryptographically random string of length n
func RandString(n int) string {
	b := make([]byte, n)

	_, err := rand.Read(b)

	if err != nil {
		panic(err)
	}

	for i := range b {
		b[i] = letterBytes[int(b[i])%len(letterBytes)]
	}

	return string(b)
}

// RandHex returns n random bytes hex encoded
func RandHex(n int) string {
	b := make([]byte, n)

	_, err := rand.Read(b)

	if err != nil {
		panic(err)
	}

	return hex.EncodeToString(b)
}

func IsNone(s string) bool {
	return s == "" || s == "none" || s == "None" || s == "null"
}
