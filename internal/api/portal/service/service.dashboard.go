package portalsvc

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	authmodels "github.com/jesus-bazan-entel/IdecapLMS/internal/api/auth/models"
	authsvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/auth/service"
	coursemodels "github.com/jesus-bazan-entel/IdecapLMS/internal/api/course/models"
	coursesvc "github.com/jesus-bazan-entel/IdecapLMS/internal/api/course/service"
	models "github.com/jesus-bazan-entel/IdecapLMS/internal/api/portal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	dashboardChangeWindowDays = 30
	recentActivityMaxLimit    = 100
)

// DashboardService calcula las estadísticas del dashboard administrativo.
type DashboardService struct {
	userService   *authsvc.UserService
	courseService *coursesvc.CourseService
}

// NewDashboardService crea un DashboardService nuevo.
func NewDashboardService() (*DashboardService, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}
	courseService, err := coursesvc.NewCourseService()
	if err != nil {
		return nil, err
	}
	return &DashboardService{
		userService:   userService,
		courseService: courseService,
	}, nil
}

// calculateChange retorna la variación porcentual y la tendencia.
func calculateChange(current, previous int64) (float64, string) {
	if previous == 0 {
		if current > 0 {
			return 100, models.TrendUp
		}
		return 0, models.TrendNeutral
	}
	change := math.Round(float64(current-previous)/float64(previous)*1000) / 10
	switch {
	case change > 0:
		return change, models.TrendUp
	case change < 0:
		return change, models.TrendDown
	default:
		return change, models.TrendNeutral
	}
}

// Stats arma las tarjetas principales del dashboard.
func (s *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	students, err := s.userService.Find(ctx, bson.M{"roles": authmodels.RoleStudent}, nil)
	if err != nil {
		return nil, err
	}
	totalStudents := int64(len(students))

	windowStart := time.Now().AddDate(0, 0, -dashboardChangeWindowDays).UnixMilli()
	var recentStudents int64
	var activeEnrollments int64
	for _, student := range students {
		if student.CreatedAt > windowStart {
			recentStudents++
		}
		if len(student.EnrolledCourses) > 0 {
			activeEnrollments++
		}
	}
	studentsChange, studentsTrend := calculateChange(recentStudents, totalStudents-recentStudents)

	liveCourses, err := s.courseService.CountDocuments(ctx, bson.M{"status": coursemodels.CourseStatusLive})
	if err != nil {
		return nil, err
	}
	totalTutors, err := s.userService.CountDocuments(ctx, bson.M{"roles": authmodels.RoleTutor})
	if err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		TotalStudents: models.StatCard{
			Title:  "Total Estudiantes",
			Value:  totalStudents,
			Change: &studentsChange,
			Trend:  studentsTrend,
			Icon:   "users",
		},
		ActiveCourses: models.StatCard{
			Title: "Cursos Activos",
			Value: liveCourses,
			Trend: models.TrendNeutral,
			Icon:  "book-open",
		},
		TotalTutors: models.StatCard{
			Title: "Tutores",
			Value: totalTutors,
			Trend: models.TrendNeutral,
			Icon:  "graduation-cap",
		},
		ActiveEnrollments: models.StatCard{
			Title: "Matrículas Activas",
			Value: activeEnrollments,
			Trend: models.TrendNeutral,
			Icon:  "clipboard-check",
		},
	}, nil
}

// UsersChart arma la serie temporal de registros de estudiantes por día.
// days se acota al rango [7, 365].
func (s *DashboardService) UsersChart(ctx context.Context, days int) (*models.TimeSeriesData, error) {
	if days < 7 {
		days = 7
	}
	if days > 365 {
		days = 365
	}

	now := time.Now()
	start := now.AddDate(0, 0, -days)
	students, err := s.userService.Find(ctx, bson.M{
		"roles":     authmodels.RoleStudent,
		"createdAt": bson.M{"$gt": start.UnixMilli()},
	}, nil)
	if err != nil {
		return nil, err
	}

	byDate := map[string]int64{}
	for _, student := range students {
		date := time.UnixMilli(student.CreatedAt).Format("2006-01-02")
		byDate[date]++
	}

	series := make([]models.TimeSeriesPoint, 0, days+1)
	for day := start; !day.After(now); day = day.AddDate(0, 0, 1) {
		date := day.Format("2006-01-02")
		series = append(series, models.TimeSeriesPoint{Date: date, Value: byDate[date]})
	}

	return &models.TimeSeriesData{
		Title:  "Registros de Estudiantes",
		Series: series,
	}, nil
}

// EnrollmentsChart arma el gráfico de estudiantes por curso (top N).
func (s *DashboardService) EnrollmentsChart(ctx context.Context, limit int) (*models.ChartData, error) {
	if limit < 1 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	students, err := s.userService.Find(ctx, bson.M{"roles": authmodels.RoleStudent}, nil)
	if err != nil {
		return nil, err
	}

	counts := map[primitive.ObjectID]int64{}
	for _, student := range students {
		for _, courseID := range student.EnrolledCourses {
			counts[courseID]++
		}
	}

	courseIDs := make([]primitive.ObjectID, 0, len(counts))
	for courseID := range counts {
		courseIDs = append(courseIDs, courseID)
	}
	sort.Slice(courseIDs, func(i, j int) bool { return counts[courseIDs[i]] > counts[courseIDs[j]] })
	if len(courseIDs) > limit {
		courseIDs = courseIDs[:limit]
	}

	courses, err := s.courseService.FindManyByIds(ctx, courseIDs)
	if err != nil {
		return nil, err
	}
	names := make(map[primitive.ObjectID]string, len(courses))
	for _, course := range courses {
		names[course.ID] = course.Name
	}

	data := make([]models.ChartDataPoint, 0, len(courseIDs))
	var total float64
	for _, courseID := range courseIDs {
		name := names[courseID]
		if name == "" {
			name = "Curso desconocido"
		}
		value := float64(counts[courseID])
		data = append(data, models.ChartDataPoint{Label: name, Value: value})
		total += value
	}

	return &models.ChartData{
		Title: "Estudiantes por Curso",
		Type:  "bar",
		Data:  data,
		Total: total,
	}, nil
}

// StudentLevelsChart arma la distribución de estudiantes por nivel.
func (s *DashboardService) StudentLevelsChart(ctx context.Context) (*models.ChartData, error) {
	students, err := s.userService.Find(ctx, bson.M{"roles": authmodels.RoleStudent}, nil)
	if err != nil {
		return nil, err
	}

	labels := map[int]string{1: "Básico", 2: "Intermedio", 3: "Avanzado"}
	counts := map[int]float64{}
	for _, student := range students {
		counts[StudentLevelOrder(student.StudentLevel)]++
	}

	data := make([]models.ChartDataPoint, 0, len(counts))
	var total float64
	for order := 1; order <= 3; order++ {
		if counts[order] == 0 {
			continue
		}
		data = append(data, models.ChartDataPoint{Label: labels[order], Value: counts[order]})
		total += counts[order]
	}

	return &models.ChartData{
		Title: "Niveles de Estudiantes",
		Type:  "pie",
		Data:  data,
		Total: total,
	}, nil
}

// CoursesStatusChart arma el gráfico de cursos por estado.
func (s *DashboardService) CoursesStatusChart(ctx context.Context) (*models.ChartData, error) {
	courses, err := s.courseService.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}

	labels := map[string]string{
		coursemodels.CourseStatusDraft:   "Borrador",
		coursemodels.CourseStatusPending: "Pendiente",
		coursemodels.CourseStatusLive:    "Publicado",
		coursemodels.CourseStatusArchive: "Archivado",
	}
	counts := map[string]float64{}
	for _, course := range courses {
		counts[course.Status]++
	}

	data := make([]models.ChartDataPoint, 0, len(counts))
	var total float64
	for _, status := range []string{
		coursemodels.CourseStatusDraft,
		coursemodels.CourseStatusPending,
		coursemodels.CourseStatusLive,
		coursemodels.CourseStatusArchive,
	} {
		if counts[status] == 0 {
			continue
		}
		data = append(data, models.ChartDataPoint{Label: labels[status], Value: counts[status]})
		total += counts[status]
	}

	return &models.ChartData{
		Title: "Estado de Cursos",
		Type:  "bar",
		Data:  data,
		Total: total,
	}, nil
}

// RecentActivity arma el feed de registros recientes de estudiantes.
func (s *DashboardService) RecentActivity(ctx context.Context, limit int) ([]models.RecentActivity, error) {
	if limit < 1 {
		limit = 20
	}
	if limit > recentActivityMaxLimit {
		limit = recentActivityMaxLimit
	}

	students, err := s.userService.Find(ctx, bson.M{"roles": authmodels.RoleStudent}, nil)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(students, func(i, j int) bool { return students[i].CreatedAt > students[j].CreatedAt })
	if len(students) > limit {
		students = students[:limit]
	}

	activities := make([]models.RecentActivity, 0, len(students))
	for _, student := range students {
		activities = append(activities, models.RecentActivity{
			ID:          student.ID.Hex(),
			Type:        "enrollment",
			Description: fmt.Sprintf("Nuevo estudiante registrado: %s", student.Name),
			UserName:    student.Name,
			Timestamp:   student.CreatedAt,
		})
	}
	return activities, nil
}
