package assistant

import (
	"context"
	"fmt"
	"io"

	"paper-grade/biz/adaptor"
	"paper-grade/biz/application/dto/assistant"
	"paper-grade/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// UploadFile accepts one multipart file under the "file" field.
func UploadFile(ctx context.Context, c *app.RequestContext) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.String(consts.StatusBadRequest, "missing file")
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.FileService.UploadFile(ctx, fh.Filename, fh.Header.Get("Content-Type"), data)
	adaptor.PostProcess(ctx, c, nil, resp, err)
}

// DownloadFile streams the stored blob back with its original content type.
func DownloadFile(ctx context.Context, c *app.RequestContext) {
	var req assistant.DownloadFileReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	data, f, err := p.FileService.DownloadFile(ctx, &req)
	if err != nil {
		adaptor.PostProcess(ctx, c, &req, nil, err)
		return
	}

	contentType := f.Metadata.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Filename))
	c.Data(consts.StatusOK, contentType, data)
}
