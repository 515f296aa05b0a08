package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"vitrine/internal/delivery/http/middleware"
	"vitrine/internal/delivery/http/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// newTestContext builds an echo context the way the server does, with the
// request validator installed and an optional JSON body.
func newTestContext(t *testing.T, method, target string, body any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// authenticate mimics the auth middleware by placing the account id on the context.
func authenticate(c echo.Context, accountID uuid.UUID) {
	c.Set(middleware.KeyAccountID, accountID)
}

// decodeData unmarshals the data field of the success envelope into out.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

// requireHTTPError asserts the handler returned an echo.HTTPError with the given status.
func requireHTTPError(t *testing.T, err error, status int) {
	t.Helper()

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, status, httpErr.Code)
}
