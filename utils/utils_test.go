package utils

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCertificateNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^CRH-\d{4}-\d{5}$`)
	yearPart := fmt.Sprintf("-%d-", time.Now().Year())

	for i := 0; i < 50; i++ {
		number := GenerateCertificateNumber()
		assert.Regexp(t, pattern, number)
		assert.Contains(t, number, yearPart)
	}
}

func TestGenerateVerificationCode(t *testing.T) {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	for i := 0; i < 50; i++ {
		code := GenerateVerificationCode()
		assert.Len(t, code, 12)
		assert.Equal(t, code, strings.ToUpper(code))
		for _, r := range code {
			assert.Contains(t, charset, string(r))
		}
	}
}

func TestGenerateVerificationCodeRapidCallsDiffer(t *testing.T) {
	// Back-to-back draws land inside the same nanosecond on fast
	// hardware; the codes must still be independent
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		seen[GenerateVerificationCode()] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestGenerateTransactionID(t *testing.T) {
	id := GenerateTransactionID()
	assert.True(t, strings.HasPrefix(id, "TXN-"))
	assert.NotContains(t, id[4:], "-")
	assert.NotEqual(t, id, GenerateTransactionID())
}
