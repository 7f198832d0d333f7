package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/academisoft/cronograma-api/internal/application/dto"
	"github.com/academisoft/cronograma-api/internal/application/usecase"
)

// ScheduleHandler maneja las peticiones HTTP para cronogramas (protegido).
type ScheduleHandler struct {
	uc     *usecase.ScheduleUseCase
	report *usecase.ReportUseCase
}

// NewScheduleHandler construye el handler.
func NewScheduleHandler(uc *usecase.ScheduleUseCase, report *usecase.ReportUseCase) *ScheduleHandler {
	return &ScheduleHandler{uc: uc, report: report}
}

// actor arma el actor autenticado desde los locals del middleware.
func actor(c *fiber.Ctx) usecase.Actor {
	return usecase.Actor{ID: GetUserID(c), Role: GetRole(c)}
}

// List godoc
// @Summary      Listar cronogramas
// @Tags         schedules
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ScheduleResponse
// @Router       /api/schedules [get]
func (h *ScheduleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), actor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cronograma por ID
// @Tags         schedules
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cronograma"
// @Success      200  {object}  dto.ScheduleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/schedules/{id} [get]
func (h *ScheduleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), actor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Filtered godoc
// @Summary      Reporte de cronogramas filtrados
// @Tags         schedules
// @Security     Bearer
// @Produce      json
// @Param        teacherId  query  string  false  "UUID del docente o 'all'"
// @Param        subjectId  query  string  false  "UUID de la materia o 'all'"
// @Param        groupId    query  string  false  "UUID del grupo o 'all'"
// @Param        status     query  string  false  "Estado o 'all'"
// @Param        modality   query  string  false  "Modalidad o 'all'"
// @Param        month      query  int     false  "Mes 1-12 (requiere year)"
// @Param        year       query  int     false  "Año"
// @Success      200  {array}   dto.ScheduleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/schedules/filtered [get]
func (h *ScheduleHandler) Filtered(c *fiber.Ctx) error {
	filter := dto.ScheduleReportFilter{
		TeacherID: c.Query("teacherId"),
		SubjectID: c.Query("subjectId"),
		GroupID:   c.Query("groupId"),
		Status:    c.Query("status"),
		Modality:  c.Query("modality"),
		Month:     c.Query("month"),
		Year:      c.Query("year"),
	}
	out, err := h.report.FilteredSchedules(c.Context(), actor(c), filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear cronograma
// @Tags         schedules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateScheduleRequest  true  "Datos del cronograma"
// @Success      201   {object}  dto.ScheduleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/schedules [post]
func (h *ScheduleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateScheduleRequest
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
// @Summary      Actualizar cronograma (parcial)
// @Tags         schedules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del cronograma"
// @Param        body  body  dto.UpdateScheduleRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ScheduleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/schedules/{id} [patch]
func (h *ScheduleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateScheduleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), actor(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Complete godoc
// @Summary      Marcar cronograma como cumplido
// @Tags         schedules
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cronograma"
// @Success      200  {object}  dto.ScheduleResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/schedules/{id}/complete [patch]
func (h *ScheduleHandler) Complete(c *fiber.Ctx) error {
	out, err := h.uc.Complete(c.Context(), actor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cronograma
// @Tags         schedules
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cronograma"
// @Success      200  {object}  dto.DeleteScheduleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/schedules/{id} [delete]
func (h *ScheduleHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.uc.Delete(c.Context(), actor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.DeleteScheduleResponse{
		Message:  "cronograma eliminado exitosamente",
		Schedule: *deleted,
	})
}
