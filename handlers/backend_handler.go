package handlers

import (
	"errors"
	"net/http"
	"strings"

	"lawmitra-backend/models"
	"lawmitra-backend/service"

	"github.com/gin-gonic/gin"
)

// BackendHandler handles HTTP requests for backend configuration
type BackendHandler struct {
	chatService *service.ChatService
}

// NewBackendHandler creates a new backend config handler
func NewBackendHandler(chatService *service.ChatService) *BackendHandler {
	return &BackendHandler{chatService: chatService}
}

// configView is the config as exposed over HTTP. The credential is masked:
// it can be set and cleared but never read back in full.
type configView struct {
	Kind             models.BackendKind      `json:"kind"`
	Credential       string                  `json:"credential"`
	Configured       bool                    `json:"configured"`
	LastTestedStatus models.ConnectionStatus `json:"last_tested_status"`
	LastTestError    string                  `json:"last_test_error,omitempty"`
}

func maskCredential(cred string) string {
	if len(cred) <= 8 {
		return strings.Repeat("*", len(cred))
	}
	return cred[:4] + "..." + cred[len(cred)-4:]
}

func toConfigView(cfg models.BackendConfig) configView {
	status := cfg.LastTestedStatus
	if status == "" {
		status = models.StatusUntested
	}
	return configView{
		Kind:             cfg.Kind,
		Credential:       maskCredential(cfg.CredentialOrEndpoint),
		Configured:       cfg.IsConfigured(),
		LastTestedStatus: status,
		LastTestError:    cfg.LastTestError,
	}
}

// GetConfig handles GET /api/backend/config
func (h *BackendHandler) GetConfig(c *gin.Context) {
	cfg, err := h.chatService.Config()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CONFIG_READ_FAILED",
				"message": err.Error(),
			},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    toConfigView(cfg),
	})
}

// SetConfigRequest is the request body for selecting a backend
type SetConfigRequest struct {
	Kind                 string `json:"kind" binding:"required"`
	CredentialOrEndpoint string `json:"credential_or_endpoint"`
}

// SetConfig handles PUT /api/backend/config
func (h *BackendHandler) SetConfig(c *gin.Context) {
	var req SetConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	cfg, err := h.chatService.SetConfig(models.BackendKind(req.Kind), req.CredentialOrEndpoint)
	if err != nil {
		if errors.Is(err, service.ErrInvalidConfig) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INVALID_CONFIG",
					"message": err.Error(),
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CONFIG_WRITE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    toConfigView(cfg),
	})
}

// ClearConfig handles DELETE /api/backend/config
func (h *BackendHandler) ClearConfig(c *gin.Context) {
	if err := h.chatService.ClearConfig(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CONFIG_CLEAR_FAILED",
				"message": err.Error(),
			},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}

// TestConnection handles POST /api/backend/test. The probe outcome lands in
// the stored config's tested status; the response reports both the status
// and, on failure, the failure kind.
func (h *BackendHandler) TestConnection(c *gin.Context) {
	cfg, err := h.chatService.TestConnection(c.Request.Context())
	if err != nil {
		var be *service.BackendError
		if errors.As(err, &be) && be.Kind == service.FailureUnconfigured {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNCONFIGURED",
					"message": service.UserMessage(service.FailureUnconfigured),
				},
			})
			return
		}
		// A failed probe is a useful result, not a server error
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    toConfigView(cfg),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    toConfigView(cfg),
	})
}
