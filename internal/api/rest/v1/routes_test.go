//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rsa_toolkit/internal/domain/keypairs"
)

func TestSetupRoutes_RegistersKeyPairEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := new(MockKeyPairService)
	mockService.On("List", mock.Anything, mock.Anything).Return([]*keypairs.KeyPairMeta{}, nil)

	router := gin.New()
	SetupRoutes(router, mockService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", BasePath+"/keypairs", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
