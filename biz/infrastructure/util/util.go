package util

import (
	"encoding/json"
	"paper-grade/biz/application/dto/basic"
)

// JSONF renders v for logging, falling back to the empty string on error.
func JSONF(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

func Succeed(msg string) (*basic.Response, error) {
	return &basic.Response{
		Code: 0,
		Msg:  msg,
	}, nil
}
