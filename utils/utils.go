package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

const verificationCodeLength = 12
const verificationCodeChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateCertificateNumber builds a human-readable certificate number in
// the form CRH-<year>-<5-digit>. The random part is drawn from [1, 99999];
// global uniqueness is enforced by the unique column, not by this function.
// The shared rand source keeps concurrent calls from repeating a draw.
func GenerateCertificateNumber() string {
	return fmt.Sprintf("CRH-%d-%05d", time.Now().Year(), rand.Intn(99999)+1)
}

// GenerateVerificationCode returns a 12-character uppercase alphanumeric
// code used for public certificate verification lookups
func GenerateVerificationCode() string {
	b := make([]byte, verificationCodeLength)
	for i := range b {
		b[i] = verificationCodeChars[rand.Intn(len(verificationCodeChars))]
	}
	return string(b)
}

// GenerateTransactionID returns a unique id for simulated payment records
func GenerateTransactionID() string {
	return "TXN-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}
