package apis

import (
	"net/http"

	"github.com/switchscope/switchscope/internal/common/httpx"
	"github.com/switchscope/switchscope/internal/invsrv/invcommon"
)

type getStatusRsp struct {
	Status        string `json:"status"`
	ServerVersion string `json:"serverVersion"`
	ApiVersion    string `json:"apiVersion"`
}

// getStatus reports service liveness for authenticated callers. The handler
// runs behind the database middleware, so reaching it means a connection
// could be acquired.
func getStatus(r *http.Request) (*httpx.Response, error) {
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response: &getStatusRsp{
			Status:        "ok",
			ServerVersion: invcommon.ServerVersion,
			ApiVersion:    invcommon.ApiVersion,
		},
	}, nil
}
