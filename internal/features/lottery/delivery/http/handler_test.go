package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-lottery-backend/internal/common/middleware"
	"event-lottery-backend/internal/features/lottery/models"
	"event-lottery-backend/internal/features/lottery/repository/memory"
	"event-lottery-backend/internal/features/lottery/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := service.New(memory.New(), nil, nil, service.SystemClock(), zerolog.Nop(), service.Options{
		ResponseWindow: time.Hour,
		LockWait:       time.Second,
	})

	router := gin.New()
	router.Use(middleware.RequestID())
	NewLotteryHandler(svc).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func createTestEvent(t *testing.T, router *gin.Engine, capacity int) string {
	t.Helper()
	now := time.Now()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/events", CreateEventRequest{
		Name:              "Meetup",
		Capacity:          capacity,
		RegistrationOpen:  now.Add(-time.Hour),
		RegistrationClose: now.Add(time.Hour),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var event models.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &event))
	require.NotEmpty(t, event.ID)
	return event.ID
}

func TestCreateEventRejectsBadBody(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/events", map[string]any{"capacity": 3})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.RequestID)
}

func TestJoinDrawRespondFlow(t *testing.T) {
	router := newTestRouter(t)
	eventID := createTestEvent(t, router, 2)

	for _, id := range []string{"a", "b", "c"} {
		rec := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/events/%s/join", eventID), JoinRequest{EntrantID: id})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	// Duplicate join.
	rec := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/events/%s/join", eventID), JoinRequest{EntrantID: "a"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	seed := int64(7)
	rec = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/events/%s/draws", eventID), DrawRequest{Count: 2, Seed: &seed})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var drawResp DrawResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &drawResp))
	require.Len(t, drawResp.SelectedIDs, 2)
	assert.Equal(t, seed, drawResp.Seed)

	rec = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/events/%s/response", eventID), RespondRequest{
		EntrantID: drawResp.SelectedIDs[0],
		Decision:  "confirm",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var respondResp RespondResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &respondResp))
	assert.True(t, respondResp.OK)
	assert.False(t, respondResp.BackfillTriggered)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/events/%s/counts", eventID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var counts models.EventCounts
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &counts))
	assert.Equal(t, 1, counts.Confirmed)
	assert.Equal(t, 1, counts.Selected)
	assert.Equal(t, 1, counts.Waiting)
}

func TestDeclineReportsBackfill(t *testing.T) {
	router := newTestRouter(t)
	eventID := createTestEvent(t, router, 1)

	for _, id := range []string{"a", "b"} {
		rec := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/events/%s/join", eventID), JoinRequest{EntrantID: id})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/events/%s/draws", eventID), DrawRequest{Count: 1})
	require.Equal(t, http.StatusOK, rec.Code)
	var drawResp DrawResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &drawResp))

	rec = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/events/%s/response", eventID), RespondRequest{
		EntrantID: drawResp.SelectedIDs[0],
		Decision:  "decline",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var respondResp RespondResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &respondResp))
	assert.True(t, respondResp.BackfillTriggered)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/events/%s/draws", eventID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var records []models.DrawRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	assert.Len(t, records, 2)
}

func TestRespondOnWaitingEntry(t *testing.T) {
	router := newTestRouter(t)
	eventID := createTestEvent(t, router, 2)

	rec := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/events/%s/join", eventID), JoinRequest{EntrantID: "a"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/events/%s/response", eventID), RespondRequest{
		EntrantID: "a",
		Decision:  "confirm",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestEntriesStatusFilter(t *testing.T) {
	router := newTestRouter(t)
	eventID := createTestEvent(t, router, 1)

	for _, id := range []string{"a", "b"} {
		rec := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/events/%s/join", eventID), JoinRequest{EntrantID: id})
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/events/%s/draws", eventID), DrawRequest{Count: 1})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/events/%s/entries?status=waiting", eventID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var entries []models.WaitlistEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	assert.Len(t, entries, 1)
	assert.Equal(t, models.StatusWaiting, entries[0].Status)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/events/%s/entries?status=bogus", eventID), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelAndPurge(t *testing.T) {
	router := newTestRouter(t)
	eventID := createTestEvent(t, router, 2)

	rec := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/events/%s/join", eventID), JoinRequest{EntrantID: "a"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/events/%s/entries/a", eventID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/events/%s/entries/a/purge", eventID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/events/%s/entries", eventID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var entries []models.WaitlistEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	assert.Empty(t, entries)
}

func TestUnknownEventReturns404(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/events/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
