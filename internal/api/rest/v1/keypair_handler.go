package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"rsa_toolkit/internal/domain/keypairs"
	"rsa_toolkit/internal/domain/rsacore"
)

// KeyPairHandler defines the interface for handling key-pair operations.
type KeyPairHandler interface {
	Generate(ctx *gin.Context)
	ListMetadata(ctx *gin.Context)
	GetMetadataByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

// keyPairHandler holds the service used to fulfill requests.
type keyPairHandler struct {
	keyPairService keypairs.KeyPairService
}

// NewKeyPairHandler creates a new KeyPairHandler.
func NewKeyPairHandler(keyPairService keypairs.KeyPairService) KeyPairHandler {
	return &keyPairHandler{keyPairService: keyPairService}
}

func toMetaResponse(meta *keypairs.KeyPairMeta) KeyPairMetaResponse {
	return KeyPairMetaResponse{
		ID:              meta.ID,
		Modulus:         meta.Modulus,
		PublicExponent:  meta.PublicExponent,
		DigitCount:      meta.DigitCount,
		DateTimeCreated: meta.DateTimeCreated,
	}
}

// Generate handles the POST request to generate and persist a new RSA key
// pair.
// @Summary Generate an RSA key pair
// @Description Generate a fresh RSA key pair of the requested digit size and persist its metadata.
// @Tags KeyPair
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeyPairRequest true "Key pair generation parameters"
// @Success 201 {object} KeyPairMetaResponse
// @Failure 400 {object} ErrorResponse
// @Router /keypairs [post]
func (h *keyPairHandler) Generate(ctx *gin.Context) {
	var request GenerateKeyPairRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request body: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	meta, err := h.keyPairService.Generate(ctx, request.DigitCount, request.Rounds)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("key generation failed: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, toMetaResponse(meta))
}

// ListMetadata handles the GET request to list key pair metadata.
// @Summary List key pair metadata
// @Description Fetch metadata for all persisted key pairs.
// @Tags KeyPair
// @Accept json
// @Produce json
// @Success 200 {array} KeyPairMetaResponse
// @Failure 404 {object} ErrorResponse
// @Router /keypairs [get]
func (h *keyPairHandler) ListMetadata(ctx *gin.Context) {
	query := keypairs.NewKeyPairQuery()

	list, err := h.keyPairService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err)})
		return
	}

	response := make([]KeyPairMetaResponse, 0, len(list))
	for _, meta := range list {
		response = append(response, toMetaResponse(meta))
	}

	ctx.JSON(http.StatusOK, response)
}

// GetMetadataByID handles the GET request to retrieve a key pair's
// metadata by ID.
// @Summary Retrieve key pair metadata by ID
// @Description Fetch the metadata of a single persisted key pair.
// @Tags KeyPair
// @Accept json
// @Produce json
// @Param id path string true "Key pair ID"
// @Success 200 {object} KeyPairMetaResponse
// @Failure 404 {object} ErrorResponse
// @Router /keypairs/{id} [get]
func (h *keyPairHandler) GetMetadataByID(ctx *gin.Context) {
	id := ctx.Param("id")

	meta, err := h.keyPairService.GetByID(ctx, id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("key pair with id %s not found", id)})
		return
	}

	ctx.JSON(http.StatusOK, toMetaResponse(meta))
}

// DeleteByID handles the DELETE request to remove a key pair.
// @Summary Delete a key pair by ID
// @Description Delete a persisted key pair and its metadata by ID.
// @Tags KeyPair
// @Accept json
// @Produce json
// @Param id path string true "Key pair ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /keypairs/{id} [delete]
func (h *keyPairHandler) DeleteByID(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := h.keyPairService.DeleteByID(ctx, id); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("error deleting key pair with id %s", id)})
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted key pair with id %s", id)})
}

// Encrypt handles the POST request to run a message through the stored key
// pair's public half.
// @Summary Encrypt a message with a stored key pair
// @Description Run the request message through the public half of a stored key pair.
// @Tags KeyPair
// @Accept json
// @Produce json
// @Param id path string true "Key pair ID"
// @Param requestBody body EncryptRequest true "Message to encrypt"
// @Success 200 {object} EncryptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keypairs/{id}/encrypt [post]
func (h *keyPairHandler) Encrypt(ctx *gin.Context) {
	id := ctx.Param("id")

	var request EncryptRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request body: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	cipherText, err := h.keyPairService.Encrypt(ctx, id, []byte(request.Message))
	if err != nil {
		ctx.JSON(cryptoErrorStatus(err), ErrorResponse{Message: fmt.Sprintf("encrypt failed: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, EncryptResponse{CipherText: cipherText})
}

// Decrypt handles the POST request to run a ciphertext through the stored
// key pair's private half.
// @Summary Decrypt a message with a stored key pair
// @Description Run the request ciphertext through the private half of a stored key pair.
// @Tags KeyPair
// @Accept json
// @Produce json
// @Param id path string true "Key pair ID"
// @Param requestBody body DecryptRequest true "Ciphertext to decrypt"
// @Success 200 {object} DecryptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keypairs/{id}/decrypt [post]
func (h *keyPairHandler) Decrypt(ctx *gin.Context) {
	id := ctx.Param("id")

	var request DecryptRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request body: %v", err)})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	plainText, err := h.keyPairService.Decrypt(ctx, id, request.CipherText)
	if err != nil {
		ctx.JSON(cryptoErrorStatus(err), ErrorResponse{Message: fmt.Sprintf("decrypt failed: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, DecryptResponse{Message: string(plainText)})
}

// cryptoErrorStatus maps rsacore's typed errors onto HTTP status codes,
// surfacing chunk/key-length problems and malformed ciphertext as client
// errors (400) and everything else as an internal error (500).
func cryptoErrorStatus(err error) int {
	switch {
	case errors.Is(err, rsacore.ErrChunkTooLarge),
		errors.Is(err, rsacore.ErrKeyTooShort),
		errors.Is(err, rsacore.ErrInvalidCiphertext):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
