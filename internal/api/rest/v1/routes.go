package v1

import (
	"github.com/gin-gonic/gin"

	"rsa_toolkit/internal/domain/keypairs"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, keyPairService keypairs.KeyPairService) {
	v1 := r.Group(BasePath)

	keyPairHandler := NewKeyPairHandler(keyPairService)
	v1.POST("/keypairs", keyPairHandler.Generate)
	v1.GET("/keypairs", keyPairHandler.ListMetadata)
	v1.GET("/keypairs/:id", keyPairHandler.GetMetadataByID)
	v1.DELETE("/keypairs/:id", keyPairHandler.DeleteByID)
	v1.POST("/keypairs/:id/encrypt", keyPairHandler.Encrypt)
	v1.POST("/keypairs/:id/decrypt", keyPairHandler.Decrypt)
}
