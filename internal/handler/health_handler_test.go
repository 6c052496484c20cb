package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"feedboard/internal/handler"
	"feedboard/internal/repository/testutil"
)

func TestHealthHandler_Healthz(t *testing.T) {
	db := testutil.NewTestDB(t)
	h := handler.NewHealthHandler(db)

	c, rec := newJSONContext(http.MethodGet, "/healthz", "")
	require.NoError(t, h.Healthz(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHealthHandler_Healthz_ClosedDB(t *testing.T) {
	db := testutil.NewTestDB(t)
	require.NoError(t, db.Close())
	h := handler.NewHealthHandler(db)

	c, rec := newJSONContext(http.MethodGet, "/healthz", "")
	require.NoError(t, h.Healthz(c))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
