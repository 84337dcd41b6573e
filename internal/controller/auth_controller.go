package controller

import (
	"edusphere-be/internal/dto"
	"edusphere-be/internal/pkg/serverutils"
	"edusphere-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/register", c.Register)
	h.Post("/login", c.Login)
	h.Post("/logout", serverutils.JwtMiddleware, c.Logout)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fail(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return failFromError(ctx, service.ErrEmptyField)
	}

	res, err := c.service.Register(ctx.Context(), &req)
	if err != nil {
		return failFromError(ctx, err)
	}
	return ok(ctx, "User registered successfully", res)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fail(ctx, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return failFromError(ctx, service.ErrEmptyField)
	}

	userAgent := ctx.Get("User-Agent")

	res, err := c.service.Login(ctx.Context(), &req, userAgent)
	if err != nil {
		return failFromError(ctx, err)
	}
	return ok(ctx, "Login successful", res)
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	username, _ := ctx.Locals("username").(string)

	if err := c.service.Logout(ctx.Context(), username); err != nil {
		return failFromError(ctx, err)
	}
	return ok(ctx, "Logged out successfully", nil)
}
