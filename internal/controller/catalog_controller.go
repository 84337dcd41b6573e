package controller

import (
	"net/url"

	"edusphere-be/internal/dto"
	"edusphere-be/pkg/catalog"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	Subjects(ctx *fiber.Ctx) error
	Chapters(ctx *fiber.Ctx) error
}

// catalogController serves the compiled-in curriculum. The routes are public;
// the catalog carries nothing user-specific.
type catalogController struct{}

func NewCatalogController() ICatalogController {
	return &catalogController{}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog")
	h.Get("/subjects", c.Subjects)
	h.Get("/subjects/:subject/chapters", c.Chapters)
}

func (c *catalogController) Subjects(ctx *fiber.Ctx) error {
	subjects := catalog.Subjects()

	res := make([]dto.SubjectDTO, 0, len(subjects))
	for _, s := range subjects {
		res = append(res, subjectToDTO(s))
	}
	return ok(ctx, "Subjects retrieved", res)
}

func (c *catalogController) Chapters(ctx *fiber.Ctx) error {
	name := ctx.Params("subject")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}

	subject, err := catalog.Get(name)
	if err != nil {
		return failFromError(ctx, err)
	}
	return ok(ctx, "Chapters retrieved", subjectToDTO(subject).Chapters)
}

func subjectToDTO(s catalog.Subject) dto.SubjectDTO {
	chapters := make([]dto.ChapterDTO, 0, len(s.Chapters))
	for _, c := range s.Chapters {
		chapters = append(chapters, dto.ChapterDTO{
			Title:       c.Title,
			Description: c.Description,
		})
	}
	return dto.SubjectDTO{
		Name:     s.Name,
		ImageRef: s.ImageRef,
		Chapters: chapters,
	}
}
