package assistant

type UploadFileResp struct {
	FileId   string `json:"fileId"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

type DownloadFileReq struct {
	FileId string `json:"fileId" query:"fileId" vd:"len($)>0"`
}
