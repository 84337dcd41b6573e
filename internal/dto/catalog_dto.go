package dto

type ChapterDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type SubjectDTO struct {
	Name     string       `json:"name"`
	ImageRef string       `json:"image_ref"`
	Chapters []ChapterDTO `json:"chapters"`
}
