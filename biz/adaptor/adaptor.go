package adaptor

import (
	"context"
	"net/http"

	"paper-grade/biz/infrastructure/util"
	"paper-grade/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"google.golang.org/grpc/status"
)

type errorBody struct {
	Code int32  `json:"code"`
	Msg  string `json:"msg"`
}

// PostProcess maps a service result onto the HTTP response. Errno values
// carry their own code, anything else becomes an internal error.
func PostProcess(ctx context.Context, c *app.RequestContext, req, resp any, err error) {
	log.CtxInfo(ctx, "[%s] req=%s, resp=%s, err=%v", c.Path(), util.JSONF(req), util.JSONF(resp), err)
	if err == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	s, ok := status.FromError(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, errorBody{Code: -1, Msg: err.Error()})
		return
	}
	c.JSON(http.StatusOK, errorBody{Code: int32(s.Code()), Msg: s.Message()})
}
