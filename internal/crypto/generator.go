package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// Character classes for generated operator passwords. Look-alike glyphs
// (0/O, 1/l/I) are left out so a password read off a terminal can be typed.
const (
	upperClass  = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	lowerClass  = "abcdefghijkmnopqrstuvwxyz"
	digitClass  = "23456789"
	symbolClass = "!@#$%^&*-_=+?"

	MinPasswordLength     = 12
	MaxPasswordLength     = 128
	DefaultPasswordLength = 20
)

var ErrPasswordLength = errors.New("password length must be between 12 and 128")

var passwordClasses = []string{upperClass, lowerClass, digitClass, symbolClass}

// GeneratePassword returns a random password of the given length containing
// at least one character from every class.
func GeneratePassword(length int) (string, error) {
	if length < MinPasswordLength || length > MaxPasswordLength {
		return "", ErrPasswordLength
	}

	var pool string
	for _, class := range passwordClasses {
		pool += class
	}

	out := make([]byte, length)
	for i := range out {
		charset := pool
		if i < len(passwordClasses) {
			charset = passwordClasses[i]
		}
		ch, err := randChar(charset)
		if err != nil {
			return "", err
		}
		out[i] = ch
	}

	if err := shuffle(out); err != nil {
		return "", err
	}
	return string(out), nil
}

func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}

// shuffle is Fisher-Yates driven by crypto/rand.
func shuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return err
		}
		data[i], data[j.Int64()] = data[j.Int64()], data[i]
	}
	return nil
}
