//go:build unit
// +build unit

package v1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateKeyPairRequest_Validate_DefaultsRounds(t *testing.T) {
	request := &GenerateKeyPairRequest{DigitCount: 12}
	assert.NoError(t, request.Validate())
	assert.Equal(t, 10, request.Rounds)
}

func TestGenerateKeyPairRequest_Validate_RejectsTooFewDigits(t *testing.T) {
	request := &GenerateKeyPairRequest{DigitCount: 3}
	assert.Error(t, request.Validate())
}

func TestEncryptRequest_Validate_RejectsEmptyMessage(t *testing.T) {
	request := &EncryptRequest{Message: ""}
	assert.Error(t, request.Validate())
}

func TestDecryptRequest_Validate_RejectsEmptyCipherText(t *testing.T) {
	request := &DecryptRequest{CipherText: ""}
	assert.Error(t, request.Validate())
}
