package assistant

import "paper-grade/biz/application/dto/basic"

type StudentInfo struct {
	Id         string `json:"id"`
	Name       string `json:"name"`
	ClassName  string `json:"className"`
	CreateTime int64  `json:"createTime"`
}

type CreateStudentReq struct {
	Name      string `json:"name" vd:"len($)>0"`
	ClassName string `json:"className"`
	Username  string `json:"username" vd:"len($)>0"`
	Password  string `json:"password" vd:"len($)>=6"`
}

type CreateStudentResp struct {
	StudentId string `json:"studentId"`
}

type ListStudentsReq struct {
	Search            string                   `json:"search,omitempty" query:"search"`
	PaginationOptions *basic.PaginationOptions `json:"paginationOptions,omitempty"`
}

type ListStudentsResp struct {
	Students []*StudentInfo `json:"students"`
	Total    int64          `json:"total"`
}

type GetStudentReq struct {
	StudentId string `json:"studentId" query:"studentId" vd:"len($)>0"`
}

type GetStudentResp struct {
	Student *StudentInfo `json:"student"`
}

type UpdateStudentReq struct {
	StudentId string  `json:"studentId" vd:"len($)>0"`
	Name      *string `json:"name,omitempty"`
	ClassName *string `json:"className,omitempty"`
}

type DeleteStudentReq struct {
	StudentId string `json:"studentId" vd:"len($)>0"`
}
