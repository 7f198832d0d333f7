package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/academisoft/cronograma-api/internal/application/dto"
	"github.com/academisoft/cronograma-api/internal/application/usecase"
)

// SubjectHandler maneja las peticiones HTTP para materias (protegido).
type SubjectHandler struct {
	uc *usecase.SubjectUseCase
}

// NewSubjectHandler construye el handler.
func NewSubjectHandler(uc *usecase.SubjectUseCase) *SubjectHandler {
	return &SubjectHandler{uc: uc}
}

// Create godoc
// @Summary      Crear materia
// @Tags         subjects
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSubjectRequest  true  "Datos de la materia"
// @Success      201   {object}  dto.SubjectResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/subjects [post]
func (h *SubjectHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSubjectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), actor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar materia (parcial)
// @Tags         subjects
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la materia"
// @Param        body  body  dto.UpdateSubjectRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SubjectResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/subjects/{id} [patch]
func (h *SubjectHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSubjectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), actor(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener materia por ID
// @Tags         subjects
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la materia"
// @Success      200  {object}  dto.SubjectResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subjects/{id} [get]
func (h *SubjectHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), actor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar materias
// @Tags         subjects
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SubjectResponse
// @Router       /api/subjects [get]
func (h *SubjectHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), actor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
