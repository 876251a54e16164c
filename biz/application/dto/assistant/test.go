package assistant

import "paper-grade/biz/application/dto/basic"

type TestInfo struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Subject     string `json:"subject"`
	Date        string `json:"date"`
	TotalMarks  int64  `json:"totalMarks"`
	Rubric      string `json:"rubric,omitempty"`
	PaperFileId string `json:"paperFileId,omitempty"`
	CreateTime  int64  `json:"createTime"`
}

type CreateTestReq struct {
	Title       string `json:"title" vd:"len($)>0"`
	Subject     string `json:"subject" vd:"len($)>0"`
	Date        string `json:"date" vd:"len($)>0"` // YYYY-MM-DD
	TotalMarks  int64  `json:"totalMarks,omitempty"`
	Rubric      string `json:"rubric,omitempty"`
	PaperFileId string `json:"paperFileId,omitempty"`
}

type CreateTestResp struct {
	TestId string `json:"testId"`
}

type ListTestsReq struct {
	Search            string                   `json:"search,omitempty" query:"search"`
	PaginationOptions *basic.PaginationOptions `json:"paginationOptions,omitempty"`
}

type ListTestsResp struct {
	Tests []*TestInfo `json:"tests"`
	Total int64       `json:"total"`
}

type GetTestReq struct {
	TestId string `json:"testId" query:"testId" vd:"len($)>0"`
}

type GetTestResp struct {
	Test *TestInfo `json:"test"`
}

type UpdateTestReq struct {
	TestId      string  `json:"testId" vd:"len($)>0"`
	Title       *string `json:"title,omitempty"`
	Subject     *string `json:"subject,omitempty"`
	Date        *string `json:"date,omitempty"`
	TotalMarks  *int64  `json:"totalMarks,omitempty"`
	Rubric      *string `json:"rubric,omitempty"`
	PaperFileId *string `json:"paperFileId,omitempty"`
}

type DeleteTestReq struct {
	TestId string `json:"testId" vd:"len($)>0"`
}

type QuestionInfo struct {
	QuestionNo string `json:"questionNo"`
	Text       string `json:"text"`
	Marks      string `json:"marks,omitempty"`
	Type       string `json:"type,omitempty"`
}

type ExtractRubricReq struct {
	TestId       string `json:"testId" vd:"len($)>0"`
	RubricFileId string `json:"rubricFileId" vd:"len($)>0"`
}

type ExtractRubricResp struct {
	Rubric string `json:"rubric"`
}

type ExtractQuestionsReq struct {
	TestId string `json:"testId" vd:"len($)>0"`
}

type ExtractQuestionsResp struct {
	Questions []*QuestionInfo `json:"questions"`
}

type ListQuestionsReq struct {
	TestId            string                   `json:"testId,omitempty" query:"testId"`
	Subject           string                   `json:"subject,omitempty" query:"subject"`
	PaginationOptions *basic.PaginationOptions `json:"paginationOptions,omitempty"`
}

type ListQuestionsResp struct {
	Questions []*QuestionInfo `json:"questions"`
	Total     int64           `json:"total"`
}
