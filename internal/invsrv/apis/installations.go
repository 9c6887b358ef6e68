package apis

import (
	"net/http"
	"strings"

	"github.com/switchscope/switchscope/internal/common/httpx"
	"github.com/switchscope/switchscope/internal/common/uuid"
	"github.com/switchscope/switchscope/internal/invsrv/db/postgresql"
	"github.com/switchscope/switchscope/internal/invsrv/invmanager"
)

func createInstallation(r *http.Request) (*httpx.Response, error) {
	body, err := readBody(r)
	if err != nil {
		return nil, err
	}
	rsp, err := invmanager.CreateInstallation(r.Context(), body)
	if err != nil {
		return nil, err
	}
	return jsonRsp(http.StatusCreated, rsp), nil
}

func getInstallation(r *http.Request) (*httpx.Response, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return nil, err
	}
	rsp, err := invmanager.GetInstallation(r.Context(), id)
	if err != nil {
		return nil, err
	}
	return jsonRsp(http.StatusOK, rsp), nil
}

func listInstallations(r *http.Request) (*httpx.Response, error) {
	q := r.URL.Query()
	filter := postgresql.InstallationFilter{
		StatusCode: q.Get("statusCode"),
		ActiveOnly: strings.EqualFold(q.Get("active"), "true"),
	}
	for name, dst := range map[string]*uuid.NullUUID{
		"locationId":  &filter.LocationID,
		"componentId": &filter.ComponentID,
		"itemId":      &filter.ItemID,
	} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		id, err := parseUUID(raw)
		if err != nil {
			return nil, invmanager.ErrInvalidUUID.Msg(name)
		}
		*dst = uuid.NullFrom(id)
	}

	rsp, err := invmanager.ListInstallations(r.Context(), filter)
	if err != nil {
		return nil, err
	}
	return jsonRsp(http.StatusOK, rsp), nil
}

func updateInstallation(r *http.Request) (*httpx.Response, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return nil, err
	}
	body, err := readBody(r)
	if err != nil {
		return nil, err
	}
	rsp, err := invmanager.UpdateInstallation(r.Context(), id, body)
	if err != nil {
		return nil, err
	}
	return jsonRsp(http.StatusOK, rsp), nil
}

func changeInstallationStatus(r *http.Request) (*httpx.Response, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return nil, err
	}
	body, err := readBody(r)
	if err != nil {
		return nil, err
	}
	rsp, err := invmanager.ChangeInstallationStatus(r.Context(), id, body)
	if err != nil {
		return nil, err
	}
	return jsonRsp(http.StatusOK, rsp), nil
}

func deleteInstallation(r *http.Request) (*httpx.Response, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return nil, err
	}
	if err := invmanager.DeleteInstallation(r.Context(), id); err != nil {
		return nil, err
	}
	return &httpx.Response{StatusCode: http.StatusNoContent}, nil
}

func runAutoTransitionSweep(r *http.Request) (*httpx.Response, error) {
	moved, err := invmanager.RunAutoTransitionSweep(r.Context())
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   map[string]int{"moved": moved},
	}, nil
}
