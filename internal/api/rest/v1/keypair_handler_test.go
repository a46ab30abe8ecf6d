//go:build unit
// +build unit

package v1

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rsa_toolkit/internal/domain/keypairs"
	"rsa_toolkit/internal/domain/rsacore"
)

func newTestContext(id string) *gin.Context {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: id}}
	return c
}

func TestKeyPairHandler_Generate_Success(t *testing.T) {
	mockService := new(MockKeyPairService)
	handler := NewKeyPairHandler(mockService)

	meta := &keypairs.KeyPairMeta{
		ID:              "abc-123",
		Modulus:         "8961",
		PublicExponent:  "13",
		DigitCount:      12,
		DateTimeCreated: time.Now(),
	}

	mockService.On("Generate", mock.Anything, 12, 10).Return(meta, nil)

	requestBody := `{"digitCount": 12, "rounds": 10}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/keypairs", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Generate(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "abc-123")
	mockService.AssertExpectations(t)
}

func TestKeyPairHandler_Generate_InvalidBody(t *testing.T) {
	mockService := new(MockKeyPairService)
	handler := NewKeyPairHandler(mockService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/keypairs", bytes.NewBufferString(`{"digitCount": 2}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Generate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Generate")
}

func TestKeyPairHandler_ListMetadata_Success(t *testing.T) {
	mockService := new(MockKeyPairService)
	handler := NewKeyPairHandler(mockService)

	meta := &keypairs.KeyPairMeta{ID: "abc-123", Modulus: "8961", PublicExponent: "13"}
	mockService.On("List", mock.Anything, mock.Anything).Return([]*keypairs.KeyPairMeta{meta}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/keypairs", nil)
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListMetadata(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "abc-123")
}

func TestKeyPairHandler_GetMetadataByID_NotFound(t *testing.T) {
	mockService := new(MockKeyPairService)
	handler := NewKeyPairHandler(mockService)

	mockService.On("GetByID", mock.Anything, "missing").Return(nil, assert.AnError)

	c := newTestContext("missing")
	req, _ := http.NewRequest("GET", "/api/v1/keypairs/missing", nil)
	c.Request = req

	handler.GetMetadataByID(c)

	assert.Equal(t, http.StatusNotFound, c.Writer.Status())
}

func TestKeyPairHandler_DeleteByID_Success(t *testing.T) {
	mockService := new(MockKeyPairService)
	handler := NewKeyPairHandler(mockService)

	mockService.On("DeleteByID", mock.Anything, "abc-123").Return(nil)

	c := newTestContext("abc-123")
	req, _ := http.NewRequest("DELETE", "/api/v1/keypairs/abc-123", nil)
	c.Request = req

	handler.DeleteByID(c)

	assert.Equal(t, http.StatusNoContent, c.Writer.Status())
}

func TestKeyPairHandler_Encrypt_ChunkTooLarge(t *testing.T) {
	mockService := new(MockKeyPairService)
	handler := NewKeyPairHandler(mockService)

	mockService.On("Encrypt", mock.Anything, "abc-123", mock.Anything).Return("", rsacore.ErrChunkTooLarge)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "abc-123"}}
	req, _ := http.NewRequest("POST", "/api/v1/keypairs/abc-123/encrypt", bytes.NewBufferString(`{"message": "hi"}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Encrypt(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestKeyPairHandler_Decrypt_Success(t *testing.T) {
	mockService := new(MockKeyPairService)
	handler := NewKeyPairHandler(mockService)

	mockService.On("Decrypt", mock.Anything, "abc-123", "a0042 ").Return([]byte("hi"), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "abc-123"}}
	req, _ := http.NewRequest("POST", "/api/v1/keypairs/abc-123/decrypt", bytes.NewBufferString(`{"cipherText": "a0042 "}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Decrypt(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hi")
}
