package page

import "paper-grade/biz/application/dto/basic"

// Parse resolves pagination options into page/pageSize with defaults.
func Parse(p *basic.PaginationOptions) (page int64, pageSize int64) {
	page = 1
	pageSize = 10
	if p != nil {
		if p.Page != nil && *p.Page > 0 {
			page = *p.Page
		}
		if p.Limit != nil && *p.Limit > 0 {
			pageSize = *p.Limit
		}
	}
	return page, pageSize
}
