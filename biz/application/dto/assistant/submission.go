package assistant

import "paper-grade/biz/application/dto/basic"

type QuestionScoreInfo struct {
	QuestionNo string  `json:"questionNo"`
	Awarded    float64 `json:"awarded"`
	Total      float64 `json:"total"`
}

type SubmissionInfo struct {
	Id             string               `json:"id"`
	TestId         string               `json:"testId"`
	StudentId      string               `json:"studentId"`
	AnswerFileId   string               `json:"answerFileId"`
	Status         string               `json:"status"`
	Score          float64              `json:"score"`
	MaxScore       float64              `json:"maxScore"`
	QuestionScores []*QuestionScoreInfo `json:"questionScores,omitempty"`
	Remarks        string               `json:"remarks,omitempty"`
	Strengths      string               `json:"strengths,omitempty"`
	Improvements   string               `json:"improvements,omitempty"`
	Message        string               `json:"message,omitempty"`
	SubmitTime     int64                `json:"submitTime"`
	GradeTime      int64                `json:"gradeTime,omitempty"`
}

type CreateSubmissionReq struct {
	TestId       string `json:"testId" vd:"len($)>0"`
	AnswerFileId string `json:"answerFileId" vd:"len($)>0"`
}

type CreateSubmissionResp struct {
	SubmissionId string `json:"submissionId"`
}

type ListSubmissionsByTestReq struct {
	TestId            string                   `json:"testId" query:"testId" vd:"len($)>0"`
	PaginationOptions *basic.PaginationOptions `json:"paginationOptions,omitempty"`
}

type ListSubmissionsByStudentReq struct {
	StudentId         string                   `json:"studentId,omitempty" query:"studentId"`
	PaginationOptions *basic.PaginationOptions `json:"paginationOptions,omitempty"`
}

type ListSubmissionsResp struct {
	Submissions []*SubmissionInfo `json:"submissions"`
	Total       int64             `json:"total"`
}

type GetSubmissionReq struct {
	SubmissionId string `json:"submissionId" query:"submissionId" vd:"len($)>0"`
}

type GetSubmissionResp struct {
	Submission *SubmissionInfo `json:"submission"`
}

type DeleteSubmissionReq struct {
	SubmissionId string `json:"submissionId" vd:"len($)>0"`
}

type RetryGradingReq struct {
	SubmissionId string `json:"submissionId" vd:"len($)>0"`
}
