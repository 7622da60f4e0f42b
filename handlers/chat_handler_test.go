package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lawmitra-backend/catalog"
	"lawmitra-backend/directory"
	"lawmitra-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *service.ChatService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	laws := catalog.NewBuiltin()
	chatService := service.NewChatService(
		service.ChatWithCatalog(laws),
		service.ChatWithConfigStore(service.NewMemoryConfigStore()),
	)

	chatHandler := NewChatHandler(chatService)
	backendHandler := NewBackendHandler(chatService)
	lawHandler := NewLawHandler(laws)
	directoryHandler := NewDirectoryHandler(directory.NewService())

	r := gin.New()
	api := r.Group("/api")
	api.POST("/chat", chatHandler.SendMessage)
	api.GET("/chat/prompts", chatHandler.GetPrompts)
	api.GET("/chat/sessions/:session_id", chatHandler.GetHistory)
	api.GET("/backend/config", backendHandler.GetConfig)
	api.PUT("/backend/config", backendHandler.SetConfig)
	api.DELETE("/backend/config", backendHandler.ClearConfig)
	api.GET("/laws", lawHandler.ListLaws)
	api.GET("/laws/:id", lawHandler.GetLaw)
	api.GET("/categories", lawHandler.ListCategories)
	api.GET("/ministers/central", directoryHandler.GetCentralMinisters)
	api.GET("/ministers/states/:code", directoryHandler.GetStateMinisters)
	api.GET("/states/:code", directoryHandler.GetStateConstitution)
	return r, chatService
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	return envelope.Data
}

func TestSendMessage_NewSessionGetsWelcomeAndLaws(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/chat", gin.H{
		"message": "traffic signal violation penalty",
	})
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.NotEmpty(t, data["session_id"])
	assert.NotNil(t, data["welcome"])

	laws, ok := data["laws"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, laws)
	first := laws[0].(map[string]any)
	assert.Equal(t, "Traffic Signal Violations", first["title"])
}

func TestSendMessage_ExistingSessionAccumulatesHistory(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/chat", gin.H{"message": "traffic fine"})
	require.Equal(t, http.StatusOK, w.Code)
	sessionID := decodeData(t, w)["session_id"].(string)

	w = doJSON(t, r, http.MethodPost, "/api/chat", gin.H{
		"session_id": sessionID,
		"message":    "road accident compensation",
	})
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, sessionID, data["session_id"])
	assert.Nil(t, data["welcome"], "welcome only appears on session creation")

	w = doJSON(t, r, http.MethodGet, "/api/chat/sessions/"+sessionID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	msgs := decodeData(t, w)["messages"].([]any)
	assert.Len(t, msgs, 5) // welcome + 2 user/bot pairs
}

func TestSendMessage_Validation(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/chat", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/chat", gin.H{
		"session_id": "not-a-uuid",
		"message":    "hello",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/chat", gin.H{
		"session_id": "00000000-0000-0000-0000-000000000001",
		"message":    "hello",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPrompts(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/chat/prompts", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Success bool     `json:"success"`
		Data    []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.Data)
}

func TestBackendConfig_SetGetClear(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/backend/config", gin.H{
		"kind":                   "single_turn",
		"credential_or_endpoint": "pplx-1234567890secret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "single_turn", data["kind"])
	assert.Equal(t, true, data["configured"])
	assert.Equal(t, "untested", data["last_tested_status"])
	// The credential is masked on the way out
	assert.NotEqual(t, "pplx-1234567890secret", data["credential"])
	assert.Contains(t, data["credential"], "...")

	w = doJSON(t, r, http.MethodGet, "/api/backend/config", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeData(t, w)["configured"])

	w = doJSON(t, r, http.MethodDelete, "/api/backend/config", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/backend/config", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeData(t, w)["configured"])
}

func TestBackendConfig_RejectsInvalid(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/backend/config", gin.H{
		"kind":                   "webhook",
		"credential_or_endpoint": "not-a-url",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/backend/config", gin.H{
		"kind": "single_turn",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListLaws_Filters(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/laws", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all.Data, catalog.NewBuiltin().Len())

	w = doJSON(t, r, http.MethodGet, "/api/laws?category=traffic", nil)
	var traffic struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &traffic))
	assert.Len(t, traffic.Data, 2)

	w = doJSON(t, r, http.MethodGet, "/api/laws?category=traffic&q=red+light", nil)
	var filtered struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &filtered))
	require.Len(t, filtered.Data, 1)
	assert.Equal(t, "traffic-1", filtered.Data[0]["id"])
}

func TestGetLaw(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/laws/women-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/laws/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDirectoryEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/ministers/central", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.NotEmpty(t, data["ministers"])

	// Unknown state yields an empty set, not an error
	w = doJSON(t, r, http.MethodGet, "/api/ministers/states/ZZ", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeData(t, w)
	assert.Empty(t, data["ministers"])

	w = doJSON(t, r, http.MethodGet, "/api/states/mh", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Maharashtra", decodeData(t, w)["name"])

	w = doJSON(t, r, http.MethodGet, "/api/states/ZZ", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
