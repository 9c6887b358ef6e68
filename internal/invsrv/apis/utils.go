// Package apis wires the inventory service REST surface to the invmanager
// orchestration layer: route tables, URL and body plumbing, and the admin
// tier enforcement.
package apis

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/switchscope/switchscope/internal/common/httpx"
	"github.com/switchscope/switchscope/internal/common/uuid"
	"github.com/switchscope/switchscope/internal/invsrv/invmanager"
)

// pathUUID parses a UUID URL parameter.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := parseUUID(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, invmanager.ErrInvalidUUID.Msg(name)
	}
	return id, nil
}

func parseUUID(raw string) (uuid.UUID, error) {
	return uuid.Parse(raw)
}

// readBody drains the request body. The server caps the size with
// http.MaxBytesReader before the handler runs.
func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, httpx.ErrInvalidRequest("request body is required")
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, httpx.ErrRequestTooLarge(maxErr.Limit)
		}
		return nil, httpx.ErrUnableToReadRequest()
	}
	return body, nil
}

func jsonRsp(status int, body []byte) *httpx.Response {
	return &httpx.Response{
		StatusCode: status,
		Response:   json.RawMessage(body),
	}
}
