// Package cryptox derives and checks password hashes for stored accounts.
package cryptox

import (
	"crypto/subtle"

	"github.com/dmitrijs2005/rfidcredits/internal/common"
	"golang.org/x/crypto/argon2"
)

// SaltSize is the length of salts produced by NewSalt.
const SaltSize = 16

// NewSalt returns SaltSize random bytes.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// HashPassword derives a 32 byte Argon2id key from password and salt.
func HashPassword(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// VerifyPassword reports whether password hashes to hash under salt.
// The comparison is constant time.
func VerifyPassword(password, salt, hash []byte) bool {
	return subtle.ConstantTimeCompare(HashPassword(password, salt), hash) == 1
}
