package apis

import (
	"net/http"
	"strconv"

	"github.com/switchscope/switchscope/internal/common/httpx"
	"github.com/switchscope/switchscope/internal/common/uuid"
	"github.com/switchscope/switchscope/internal/invsrv/db/models"
	"github.com/switchscope/switchscope/internal/invsrv/db/postgresql"
	"github.com/switchscope/switchscope/internal/invsrv/invmanager"
)

func createComponent(r *http.Request) (*httpx.Response, error) {
	body, err := readBody(r)
	if err != nil {
		return nil, err
	}
	rsp, err := invmanager.CreateComponent(r.Context(), body)
	if err != nil {
		return nil, err
	}
	return jsonRsp(http.StatusCreated, rsp), nil
}

func createChildComponent(r *http.Request) (*httpx.Response, error) {
	parentID, err := pathUUID(r, "id")
	if err != nil {
		return nil, err
	}
	body, err := readBody(r)
	if err != nil {
		return nil, err
	}
	rsp, err := invmanager.CreateChildComponent(r.Context(), parentID, body)
	if err != nil {
		return nil, err
	}
	return jsonRsp(http.StatusCreated, rsp), nil
}

func getComponent(r *http.Request) (*httpx.Response, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return nil, err
	}
	rsp, err := invmanager.GetComponent(r.Context(), id)
	if err != nil {
		return nil, err
	}
	return jsonRsp(http.StatusOK, rsp), nil
}

func listComponents(r *http.Request) (*httpx.Response, error) {
	q := r.URL.Query()
	filter := postgresql.ComponentFilter{
		Kind:       models.ComponentKind(q.Get("kind")),
		TypeCode:   q.Get("typeCode"),
		StatusCode: q.Get("statusCode"),
	}
	if raw := q.Get("locationId"); raw != "" {
		id, err := parseUUID(raw)
		if err != nil {
			return nil, invmanager.ErrInvalidUUID.Msg("locationId")
		}
		filter.LocationID = uuid.NullFrom(id)
	}
	if raw := q.Get("parentId"); raw != "" {
		id, err := parseUUID(raw)
		if err != nil {
			return nil, invmanager.ErrInvalidUUID.Msg("parentId")
		}
		filter.ParentID = uuid.NullFrom(id)
	}

	rsp, err := invmanager.ListComponents(r.Context(), filter)
	if err != nil {
		return nil, err
	}
	return jsonRsp(http.StatusOK, rsp), nil
}

func listComponentChildren(r *http.Request) (*httpx.Response, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return nil, err
	}
	rsp, err := invmanager.ListChildComponents(r.Context(), id)
	if err != nil {
		return nil, err
	}
	return jsonRsp(http.StatusOK, rsp), nil
}

func getComponentPath(r *http.Request) (*httpx.Response, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return nil, err
	}
	rsp, err := invmanager.ComponentPath(r.Context(), id)
	if err != nil {
		return nil, err
	}
	return jsonRsp(http.StatusOK, rsp), nil
}

func updateComponent(r *http.Request) (*httpx.Response, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return nil, err
	}
	body, err := readBody(r)
	if err != nil {
		return nil, err
	}
	rsp, err := invmanager.UpdateComponent(r.Context(), id, body)
	if err != nil {
		return nil, err
	}
	return jsonRsp(http.StatusOK, rsp), nil
}

func changeComponentStatus(r *http.Request) (*httpx.Response, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return nil, err
	}
	body, err := readBody(r)
	if err != nil {
		return nil, err
	}
	rsp, err := invmanager.ChangeComponentStatus(r.Context(), id, body)
	if err != nil {
		return nil, err
	}
	return jsonRsp(http.StatusOK, rsp), nil
}

func setComponentCredential(r *http.Request) (*httpx.Response, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return nil, err
	}
	body, err := readBody(r)
	if err != nil {
		return nil, err
	}
	if err := invmanager.SetComponentCredential(r.Context(), id, body); err != nil {
		return nil, err
	}
	return &httpx.Response{StatusCode: http.StatusNoContent}, nil
}

func deleteComponent(r *http.Request) (*httpx.Response, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return nil, err
	}
	if err := invmanager.DeleteComponent(r.Context(), id); err != nil {
		return nil, err
	}
	return &httpx.Response{StatusCode: http.StatusNoContent}, nil
}

func firstAvailableRackPosition(r *http.Request) (*httpx.Response, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return nil, err
	}
	height := 1
	if raw := r.URL.Query().Get("height"); raw != "" {
		h, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return nil, httpx.ErrInvalidRequest("height must be an integer")
		}
		height = h
	}
	rsp, err := invmanager.FirstAvailableRackPosition(r.Context(), id, height)
	if err != nil {
		return nil, err
	}
	return jsonRsp(http.StatusOK, rsp), nil
}
