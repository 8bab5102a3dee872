package service

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	kdfIterations = 100000
	saltSize      = 16
	keySize       = 32
	recordSep     = ":"
)

// DeriveKey is PBKDF2-HMAC-SHA256 over the password with the given salt.
func DeriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, kdfIterations, keySize, sha256.New)
}

// HashPassword derives a key under a fresh random salt and returns the
// "<salt-hex>:<key-hex>" record.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.New("generating salt error: " + err.Error())
	}
	return hex.EncodeToString(salt) + recordSep + hex.EncodeToString(DeriveKey(password, salt)), nil
}

// VerifyPassword re-derives with the salt stored in record. A malformed record
// never verifies.
func VerifyPassword(record, password string) bool {
	saltHex, keyHex, ok := strings.Cut(record, recordSep)
	if !ok {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil || len(salt) == 0 {
		return false
	}
	want, err := hex.DecodeString(keyHex)
	if err != nil || len(want) != keySize {
		return false
	}
	got := DeriveKey(password, salt)
	return subtle.ConstantTimeCompare(got, want) == 1
}
