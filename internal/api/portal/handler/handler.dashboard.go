package portalhdl

import (
	"fmt"
	"strconv"

	basehdl "github.com/jesus-bazan-entel/IdecapLMS/internal/api/base/handler"
	portalsvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/portal/service"

	"github.com/gofiber/fiber/v3"
)

// DashboardHandler atiende las estadísticas del dashboard administrativo.
type DashboardHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	service *portalsvc.DashboardService
}

// NewDashboardHandler crea un DashboardHandler nuevo.
func NewDashboardHandler() (*DashboardHandler, error) {
	service, err := portalsvc.NewDashboardService()
	if err != nil {
		return nil, fmt.Errorf("error al crear el service del dashboard: %v", err)
	}
	return &DashboardHandler{
		BaseHandler: basehdl.NewBaseHandler[interface{}, interface{}, interface{}](nil),
		service:     service,
	}, nil
}

// queryInt lee un parámetro entero de la query con valor por defecto.
func queryInt(c fiber.Ctx, name string, fallback int) int {
	if s := c.Query(name); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

// HandleStats devuelve las tarjetas principales del dashboard.
func (h *DashboardHandler) HandleStats(c fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	h.HandleResponse(c, stats, err)
	return nil
}

// HandleUsersChart devuelve la serie de registros de estudiantes (?days=).
func (h *DashboardHandler) HandleUsersChart(c fiber.Ctx) error {
	chart, err := h.service.UsersChart(c.Context(), queryInt(c, "days", 30))
	h.HandleResponse(c, chart, err)
	return nil
}

// HandleEnrollmentsChart devuelve el gráfico de estudiantes por curso (?limit=).
func (h *DashboardHandler) HandleEnrollmentsChart(c fiber.Ctx) error {
	chart, err := h.service.EnrollmentsChart(c.Context(), queryInt(c, "limit", 10))
	h.HandleResponse(c, chart, err)
	return nil
}

// HandleStudentLevelsChart devuelve la distribución por nivel.
func (h *DashboardHandler) HandleStudentLevelsChart(c fiber.Ctx) error {
	chart, err := h.service.StudentLevelsChart(c.Context())
	h.HandleResponse(c, chart, err)
	return nil
}

// HandleCoursesStatusChart devuelve el gráfico de cursos por estado.
func (h *DashboardHandler) HandleCoursesStatusChart(c fiber.Ctx) error {
	chart, err := h.service.CoursesStatusChart(c.Context())
	h.HandleResponse(c, chart, err)
	return nil
}

// HandleRecentActivity devuelve el feed de actividad reciente (?limit=).
func (h *DashboardHandler) HandleRecentActivity(c fiber.Ctx) error {
	activity, err := h.service.RecentActivity(c.Context(), queryInt(c, "limit", 20))
	h.HandleResponse(c, activity, err)
	return nil
}
