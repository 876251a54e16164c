package service

import (
	"context"

	"paper-grade/biz/adaptor"
	"paper-grade/biz/application/dto/assistant"
	"paper-grade/biz/infrastructure/config"
	"paper-grade/biz/infrastructure/consts"
	"paper-grade/biz/infrastructure/storage"
	"paper-grade/biz/infrastructure/util/log"

	"github.com/google/wire"
)

type IFileService interface {
	UploadFile(ctx context.Context, filename, contentType string, data []byte) (*assistant.UploadFileResp, error)
	DownloadFile(ctx context.Context, req *assistant.DownloadFileReq) ([]byte, *storage.StoredFile, error)
}

type FileService struct {
	Config *config.Config
	Store  storage.IStore
}

var FileServiceSet = wire.NewSet(
	wire.Struct(new(FileService), "*"),
	wire.Bind(new(IFileService), new(*FileService)),
)

// ValidateUpload rejects empty, oversized and unsupported files before
// anything touches storage.
func ValidateUpload(filename, contentType string, size int64, maxBytes int64) error {
	if size == 0 {
		return consts.ErrFileEmpty
	}
	if maxBytes <= 0 {
		maxBytes = consts.MaxUploadBytes
	}
	if size > maxBytes {
		return consts.ErrFileTooLarge
	}
	if !consts.AllowedUploadTypes[contentType] {
		return consts.ErrFileType
	}
	return nil
}

// UploadFile stores an uploaded document in GridFS with the retention
// window applied.
func (s *FileService) UploadFile(ctx context.Context, filename, contentType string, data []byte) (*assistant.UploadFileResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	if err := ValidateUpload(filename, contentType, int64(len(data)), s.Config.Upload.MaxBytes); err != nil {
		return nil, err
	}

	fileID, err := s.Store.Upload(ctx, filename, contentType, data, true)
	if err != nil {
		log.Error("store upload failed: %v", err)
		return nil, consts.ErrStoreFile
	}

	return &assistant.UploadFileResp{
		FileId:   fileID,
		Filename: filename,
		Size:     int64(len(data)),
	}, nil
}

func (s *FileService) DownloadFile(ctx context.Context, req *assistant.DownloadFileReq) ([]byte, *storage.StoredFile, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, nil, consts.ErrNotAuthentication
	}

	data, f, err := s.Store.Download(ctx, req.FileId)
	if err != nil {
		return nil, nil, consts.ErrFileNotFound
	}
	return data, f, nil
}
