package controller

import (
	"context"
	"strconv"

	"edusphere-be/internal/dto"
	"edusphere-be/internal/pkg/serverutils"
	"edusphere-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type ITutorController interface {
	RegisterRoutes(r fiber.Router)
	GetSession(ctx *fiber.Ctx) error
	SelectSubject(ctx *fiber.Ctx) error
	SelectChapter(ctx *fiber.Ctx) error
	Chat(ctx *fiber.Ctx) error
	Video(ctx *fiber.Ctx) error
	Transcript(ctx *fiber.Ctx) error
	Quiz(ctx *fiber.Ctx) error
	SubmitQuiz(ctx *fiber.Ctx) error
	Progress(ctx *fiber.Ctx) error
	Activity(ctx *fiber.Ctx) error
}

type tutorController struct {
	service         service.ITutorService
	activityService service.IActivityService
}

func NewTutorController(tutorService service.ITutorService, activityService service.IActivityService) ITutorController {
	return &tutorController{
		service:         tutorService,
		activityService: activityService,
	}
}

func (c *tutorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tutor", serverutils.JwtMiddleware)
	h.Get("/session", c.GetSession)
	h.Post("/subject", c.SelectSubject)
	h.Post("/chapter", c.SelectChapter)
	h.Post("/chat", c.Chat)
	h.Get("/chat/stream", websocket.New(c.chatStream))
	h.Get("/video", c.Video)
	h.Get("/transcript", c.Transcript)
	h.Get("/quiz", c.Quiz)
	h.Post("/quiz/answer", c.SubmitQuiz)
	h.Get("/progress", c.Progress)
	h.Get("/activity", c.Activity)
}

func (c *tutorController) GetSession(ctx *fiber.Ctx) error {
	username, _ := ctx.Locals("username").(string)

	res, err := c.service.GetSession(ctx.Context(), username)
	if err != nil {
		return failFromError(ctx, err)
	}
	return ok(ctx, "Session retrieved", res)
}

func (c *tutorController) SelectSubject(ctx *fiber.Ctx) error {
	username, _ := ctx.Locals("username").(string)

	var req dto.SelectSubjectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fail(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fail(ctx, fiber.StatusBadRequest, "subject is required")
	}

	res, err := c.service.SelectSubject(ctx.Context(), username, &req)
	if err != nil {
		return failFromError(ctx, err)
	}
	return ok(ctx, "Subject selected", res)
}

func (c *tutorController) SelectChapter(ctx *fiber.Ctx) error {
	username, _ := ctx.Locals("username").(string)

	var req dto.SelectChapterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fail(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fail(ctx, fiber.StatusBadRequest, "chapter is required")
	}

	res, err := c.service.SelectChapter(ctx.Context(), username, &req)
	if err != nil {
		return failFromError(ctx, err)
	}
	return ok(ctx, "Chapter selected", res)
}

func (c *tutorController) Chat(ctx *fiber.Ctx) error {
	username, _ := ctx.Locals("username").(string)

	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fail(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fail(ctx, fiber.StatusBadRequest, "message is required")
	}

	res, err := c.service.Chat(ctx.Context(), username, &req)
	if err != nil {
		return failFromError(ctx, err)
	}
	return ok(ctx, "Reply generated", res)
}

// chatStream serves one chat turn over a websocket. The client sends a single
// JSON ChatRequest; fragments stream back as text frames, then one closing
// JSON frame with {"done": true} or {"error": "..."}.
func (c *tutorController) chatStream(conn *websocket.Conn) {
	defer conn.Close()

	username, _ := conn.Locals("username").(string)

	var req dto.ChatRequest
	if err := conn.ReadJSON(&req); err != nil {
		_ = conn.WriteJSON(fiber.Map{"error": "invalid request payload"})
		return
	}
	if req.Message == "" {
		_ = conn.WriteJSON(fiber.Map{"error": "message is required"})
		return
	}

	// The fiber request context ends at upgrade time, so the stream runs on
	// its own context. Cancel it on every exit path so the service send loop
	// unblocks when the client is gone.
	streamCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fragments, errCh := c.service.ChatStream(streamCtx, username, &req)

	for fragment := range fragments {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(fragment)); err != nil {
			return
		}
	}

	if err := <-errCh; err != nil {
		_ = conn.WriteJSON(fiber.Map{"error": err.Error()})
		return
	}
	_ = conn.WriteJSON(fiber.Map{"done": true})
}

func (c *tutorController) Video(ctx *fiber.Ctx) error {
	username, _ := ctx.Locals("username").(string)

	res, err := c.service.Video(ctx.Context(), username)
	if err != nil {
		return failFromError(ctx, err)
	}
	return ok(ctx, "Video retrieved", res)
}

func (c *tutorController) Transcript(ctx *fiber.Ctx) error {
	username, _ := ctx.Locals("username").(string)

	// ?t=<seconds> asks which segment is spoken at that playback position.
	playbackTime := -1.0
	if raw := ctx.Query("t"); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			playbackTime = parsed
		}
	}

	res, err := c.service.Transcript(ctx.Context(), username, playbackTime)
	if err != nil {
		return failFromError(ctx, err)
	}
	return ok(ctx, "Transcript retrieved", res)
}

func (c *tutorController) Quiz(ctx *fiber.Ctx) error {
	username, _ := ctx.Locals("username").(string)

	res, err := c.service.Quiz(ctx.Context(), username)
	if err != nil {
		return failFromError(ctx, err)
	}
	return ok(ctx, "Quiz ready", res)
}

func (c *tutorController) SubmitQuiz(ctx *fiber.Ctx) error {
	username, _ := ctx.Locals("username").(string)

	var req dto.QuizAnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fail(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fail(ctx, fiber.StatusBadRequest, "answer must be one of A, B, C, D")
	}

	res, err := c.service.SubmitQuiz(ctx.Context(), username, &req)
	if err != nil {
		return failFromError(ctx, err)
	}
	return ok(ctx, "Answer recorded", res)
}

func (c *tutorController) Progress(ctx *fiber.Ctx) error {
	username, _ := ctx.Locals("username").(string)

	res, err := c.activityService.Progress(ctx.Context(), username)
	if err != nil {
		return failFromError(ctx, err)
	}
	return ok(ctx, "Progress retrieved", res)
}

func (c *tutorController) Activity(ctx *fiber.Ctx) error {
	username, _ := ctx.Locals("username").(string)

	req := dto.ActivityHistoryRequest{
		Subject:   ctx.Query("subject"),
		EventType: ctx.Query("event_type"),
		Limit:     ctx.QueryInt("limit", 0),
		Offset:    ctx.QueryInt("offset", 0),
	}

	res, err := c.activityService.History(ctx.Context(), username, &req)
	if err != nil {
		return failFromError(ctx, err)
	}
	return ok(ctx, "Activity retrieved", res)
}
