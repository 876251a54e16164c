package service

import (
	"testing"

	"paper-grade/biz/infrastructure/consts"

	"github.com/stretchr/testify/assert"
)

func TestValidateUpload(t *testing.T) {
	assert.NoError(t, ValidateUpload("sheet.jpg", "image/jpeg", 1024, consts.MaxUploadBytes))
	assert.NoError(t, ValidateUpload("sheet.png", "image/png", 1024, consts.MaxUploadBytes))
	assert.NoError(t, ValidateUpload("paper.pdf", "application/pdf", 1024, consts.MaxUploadBytes))
}

func TestValidateUpload_Empty(t *testing.T) {
	err := ValidateUpload("sheet.jpg", "image/jpeg", 0, consts.MaxUploadBytes)
	assert.ErrorIs(t, err, consts.ErrFileEmpty)
}

func TestValidateUpload_TooLarge(t *testing.T) {
	err := ValidateUpload("sheet.jpg", "image/jpeg", consts.MaxUploadBytes+1, consts.MaxUploadBytes)
	assert.ErrorIs(t, err, consts.ErrFileTooLarge)

	// exactly at the cap is allowed
	assert.NoError(t, ValidateUpload("sheet.jpg", "image/jpeg", consts.MaxUploadBytes, consts.MaxUploadBytes))
}

func TestValidateUpload_UnsupportedType(t *testing.T) {
	err := ValidateUpload("notes.txt", "text/plain", 1024, consts.MaxUploadBytes)
	assert.ErrorIs(t, err, consts.ErrFileType)

	err = ValidateUpload("archive.zip", "application/zip", 1024, consts.MaxUploadBytes)
	assert.ErrorIs(t, err, consts.ErrFileType)
}

func TestValidateUpload_DefaultCap(t *testing.T) {
	// maxBytes <= 0 falls back to the built-in cap
	err := ValidateUpload("sheet.jpg", "image/jpeg", consts.MaxUploadBytes+1, 0)
	assert.ErrorIs(t, err, consts.ErrFileTooLarge)
}
