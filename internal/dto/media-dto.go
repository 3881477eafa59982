package dto

type MediaUploadResponseDTO struct {
	Context string   `json:"context"`
	URLs    []string `json:"urls"`
}
