package assistant

type GenerateReportReq struct {
	SubmissionId string `json:"submissionId" vd:"len($)>0"`
}

type GenerateClassReportReq struct {
	TestId string `json:"testId" vd:"len($)>0"`
}

type GenerateReportResp struct {
	FileId   string `json:"fileId"`
	Filename string `json:"filename"`
}
