package catalog

import "errors"

var (
	ErrSubjectNotFound = errors.New("subject not found")
	ErrChapterNotFound = errors.New("chapter not found")
)

// Chapter is one ordered sub-topic of a subject. Index 0 is the default
// selection when the subject is picked.
type Chapter struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoRef    string `json:"video_ref"`
}

// Subject is a top-level curriculum category. The catalog is compiled-in and
// never mutated at runtime.
type Subject struct {
	Name     string    `json:"name"`
	ImageRef string    `json:"image_ref"`
	Chapters []Chapter `json:"chapters"`
}

// Subjects returns the catalog in its fixed order.
func Subjects() []Subject {
	return subjects
}

// DefaultSubject is the first catalog entry, used for the initial render.
func DefaultSubject() Subject {
	return subjects[0]
}

// Get finds a subject by exact name.
func Get(name string) (Subject, error) {
	for _, s := range subjects {
		if s.Name == name {
			return s, nil
		}
	}
	return Subject{}, ErrSubjectNotFound
}

// ChaptersFor returns the ordered chapter list of a subject.
func ChaptersFor(name string) ([]Chapter, error) {
	s, err := Get(name)
	if err != nil {
		return nil, err
	}
	return s.Chapters, nil
}

// ChapterIndex searches a subject's chapters by exact title. A stale title
// (e.g. kept across a subject switch) yields ErrChapterNotFound.
func ChapterIndex(subjectName, title string) (int, error) {
	chapters, err := ChaptersFor(subjectName)
	if err != nil {
		return 0, err
	}
	for i, c := range chapters {
		if c.Title == title {
			return i, nil
		}
	}
	return 0, ErrChapterNotFound
}

// VideoRef returns the video reference of a chapter by position.
func VideoRef(subjectName string, index int) (string, error) {
	chapters, err := ChaptersFor(subjectName)
	if err != nil {
		return "", err
	}
	if index < 0 || index >= len(chapters) {
		return "", ErrChapterNotFound
	}
	return chapters[index].VideoRef, nil
}
