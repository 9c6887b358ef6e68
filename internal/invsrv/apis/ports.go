package apis

import (
	"net/http"

	"github.com/switchscope/switchscope/internal/common/httpx"
	"github.com/switchscope/switchscope/internal/invsrv/invmanager"
)

func createPort(r *http.Request) (*httpx.Response, error) {
	componentID, err := pathUUID(r, "id")
	if err != nil {
		return nil, err
	}
	body, err := readBody(r)
	if err != nil {
		return nil, err
	}
	rsp, err := invmanager.CreatePort(r.Context(), componentID, body)
	if err != nil {
		return nil, err
	}
	return jsonRsp(http.StatusCreated, rsp), nil
}

func listComponentPorts(r *http.Request) (*httpx.Response, error) {
	componentID, err := pathUUID(r, "id")
	if err != nil {
		return nil, err
	}
	rsp, err := invmanager.ListPorts(r.Context(), componentID)
	if err != nil {
		return nil, err
	}
	return jsonRsp(http.StatusOK, rsp), nil
}

func getPort(r *http.Request) (*httpx.Response, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return nil, err
	}
	rsp, err := invmanager.GetPort(r.Context(), id)
	if err != nil {
		return nil, err
	}
	return jsonRsp(http.StatusOK, rsp), nil
}

func updatePort(r *http.Request) (*httpx.Response, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return nil, err
	}
	body, err := readBody(r)
	if err != nil {
		return nil, err
	}
	rsp, err := invmanager.UpdatePort(r.Context(), id, body)
	if err != nil {
		return nil, err
	}
	return jsonRsp(http.StatusOK, rsp), nil
}

func deletePort(r *http.Request) (*httpx.Response, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return nil, err
	}
	if err := invmanager.DeletePort(r.Context(), id); err != nil {
		return nil, err
	}
	return &httpx.Response{StatusCode: http.StatusNoContent}, nil
}
