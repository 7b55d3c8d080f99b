package domain

type Book struct {
	ISBN         string `json:"isbn"`
	Name         string `json:"name"`
	Author       string `json:"author"`
	Introduction string `json:"introduction,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
}
