package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

const (
	RecoveryCodeLength = 8
	NumRecoveryCodes   = 10
)

// GenerateRecoveryCodes generates a set of random recovery codes
func GenerateRecoveryCodes() ([]string, error) {
	codes := make([]string, NumRecoveryCodes)

	for i := 0; i < NumRecoveryCodes; i++ {
		bytes := make([]byte, RecoveryCodeLength/2)
		if _, err := rand.Read(bytes); err != nil {
			return nil, err
		}

		code := strings.ToUpper(hex.EncodeToString(bytes))
		// Insert hyphen in middle for readability
		codes[i] = code[:4] + "-" + code[4:]
	}

	return codes, nil
}

// HashRecoveryCodes hashes the recovery codes for storage. Codes are
// normalized (hyphens stripped, uppercased) before hashing so user input
// with or without the hyphen matches.
func HashRecoveryCodes(codes []string) []string {
	hashedCodes := make([]string, len(codes))
	for i, code := range codes {
		hashedCodes[i] = HashString(NormalizeRecoveryCode(code))
	}
	return hashedCodes
}

func NormalizeRecoveryCode(code string) string {
	return strings.ToUpper(strings.ReplaceAll(code, "-", ""))
}
