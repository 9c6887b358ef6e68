package apis

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/switchscope/switchscope/internal/common/httpx"
	"github.com/switchscope/switchscope/internal/invsrv/invmanager"
)

func catalogResource(r *http.Request) (invmanager.CatalogResource, error) {
	return invmanager.CatalogResourceForKind(chi.URLParam(r, "catalogKind"))
}

func createCatalogEntry(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	res, err := catalogResource(r)
	if err != nil {
		return nil, err
	}
	body, err := readBody(r)
	if err != nil {
		return nil, err
	}
	rsp, err := res.Create(ctx, body)
	if err != nil {
		return nil, err
	}
	return jsonRsp(http.StatusCreated, rsp), nil
}

func getCatalogEntry(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	res, err := catalogResource(r)
	if err != nil {
		return nil, err
	}

	// Coded lookups are served from the same route: anything that does not
	// parse as a UUID is treated as a code.
	raw := chi.URLParam(r, "id")
	id, parseErr := parseUUID(raw)
	var rsp []byte
	if parseErr == nil {
		rsp, err = res.Get(ctx, id)
	} else {
		rsp, err = res.GetByCode(ctx, raw)
	}
	if err != nil {
		return nil, err
	}
	return jsonRsp(http.StatusOK, rsp), nil
}

func listCatalogEntries(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	res, err := catalogResource(r)
	if err != nil {
		return nil, err
	}
	activeOnly := strings.EqualFold(r.URL.Query().Get("active"), "true")
	rsp, err := res.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	return jsonRsp(http.StatusOK, rsp), nil
}

func updateCatalogEntry(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	res, err := catalogResource(r)
	if err != nil {
		return nil, err
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		return nil, err
	}
	body, err := readBody(r)
	if err != nil {
		return nil, err
	}
	rsp, err := res.Update(ctx, id, body)
	if err != nil {
		return nil, err
	}
	return jsonRsp(http.StatusOK, rsp), nil
}

func deleteCatalogEntry(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	res, err := catalogResource(r)
	if err != nil {
		return nil, err
	}
	id, err := pathUUID(r, "id")
	if err != nil {
		return nil, err
	}
	if err := res.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &httpx.Response{StatusCode: http.StatusNoContent}, nil
}
