package apis

import (
	"net/http"
	"strings"

	"github.com/switchscope/switchscope/internal/common/httpx"
	"github.com/switchscope/switchscope/internal/common/uuid"
	"github.com/switchscope/switchscope/internal/invsrv/db/postgresql"
	"github.com/switchscope/switchscope/internal/invsrv/invmanager"
)

func createLocation(r *http.Request) (*httpx.Response, error) {
	body, err := readBody(r)
	if err != nil {
		return nil, err
	}
	rsp, err := invmanager.CreateLocation(r.Context(), body)
	if err != nil {
		return nil, err
	}
	return jsonRsp(http.StatusCreated, rsp), nil
}

func getLocation(r *http.Request) (*httpx.Response, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return nil, err
	}
	rsp, err := invmanager.GetLocation(r.Context(), id)
	if err != nil {
		return nil, err
	}
	return jsonRsp(http.StatusOK, rsp), nil
}

func listLocations(r *http.Request) (*httpx.Response, error) {
	q := r.URL.Query()
	filter := postgresql.LocationFilter{
		TypeCode:  q.Get("typeCode"),
		RootsOnly: strings.EqualFold(q.Get("roots"), "true"),
	}
	if raw := q.Get("parentId"); raw != "" {
		id, err := parseUUID(raw)
		if err != nil {
			return nil, invmanager.ErrInvalidUUID.Msg("parentId")
		}
		filter.ParentID = uuid.NullFrom(id)
	}

	rsp, err := invmanager.ListLocations(r.Context(), filter)
	if err != nil {
		return nil, err
	}
	return jsonRsp(http.StatusOK, rsp), nil
}

func getLocationPath(r *http.Request) (*httpx.Response, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return nil, err
	}
	rsp, err := invmanager.LocationPath(r.Context(), id)
	if err != nil {
		return nil, err
	}
	return jsonRsp(http.StatusOK, rsp), nil
}

func updateLocation(r *http.Request) (*httpx.Response, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return nil, err
	}
	body, err := readBody(r)
	if err != nil {
		return nil, err
	}
	rsp, err := invmanager.UpdateLocation(r.Context(), id, body)
	if err != nil {
		return nil, err
	}
	return jsonRsp(http.StatusOK, rsp), nil
}

func deleteLocation(r *http.Request) (*httpx.Response, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return nil, err
	}
	if err := invmanager.DeleteLocation(r.Context(), id); err != nil {
		return nil, err
	}
	return &httpx.Response{StatusCode: http.StatusNoContent}, nil
}
