package assistant

type SignUpReq struct {
	Username  string `json:"username" vd:"len($)>0 && len($)<64"`
	Password  string `json:"password" vd:"len($)>=6"`
	Role      string `json:"role" vd:"$=='admin' || $=='student'"`
	StudentId string `json:"studentId,omitempty"`
}

type SignUpResp struct {
	Id string `json:"id"`
}

type SignInReq struct {
	Username string `json:"username" vd:"len($)>0"`
	Password string `json:"password" vd:"len($)>0"`
}

type SignInResp struct {
	Id           string `json:"id"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	AccessToken  string `json:"accessToken"`
	AccessExpire int64  `json:"accessExpire"`
}

type GetUserInfoReq struct {
}

type GetUserInfoResp struct {
	Id        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	StudentId string `json:"studentId,omitempty"`
}
