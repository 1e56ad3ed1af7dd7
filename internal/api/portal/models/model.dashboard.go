package models

// Tendencias de una tarjeta de estadística.
const (
	TrendUp      = "up"
	TrendDown    = "down"
	TrendNeutral = "neutral"
)

// StatCard es una tarjeta de estadística del dashboard.
type StatCard struct {
	Title  string   `json:"title"`
	Value  int64    `json:"value"`
	Change *float64 `json:"change,omitempty"` // Variación porcentual vs. periodo anterior
	Trend  string   `json:"trend"`
	Icon   string   `json:"icon,omitempty"`
}

// DashboardStats son las tarjetas principales del dashboard.
type DashboardStats struct {
	TotalStudents     StatCard `json:"totalStudents"`
	ActiveCourses     StatCard `json:"activeCourses"`
	TotalTutors       StatCard `json:"totalTutors"`
	ActiveEnrollments StatCard `json:"activeEnrollments"`
}

// ChartDataPoint es un punto de un gráfico categórico.
type ChartDataPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartData es la respuesta de un gráfico categórico.
type ChartData struct {
	Title string           `json:"title"`
	Type  string           `json:"type"` // line, bar, pie, area
	Data  []ChartDataPoint `json:"data"`
	Total float64          `json:"total"`
}

// TimeSeriesPoint es un punto de una serie temporal por día.
type TimeSeriesPoint struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Value int64  `json:"value"`
}

// TimeSeriesData es la respuesta de un gráfico de serie temporal.
type TimeSeriesData struct {
	Title  string            `json:"title"`
	Series []TimeSeriesPoint `json:"series"`
}

// RecentActivity es un ítem del feed de actividad reciente.
type RecentActivity struct {
	ID          string `json:"id"`
	Type        string `json:"type"` // enrollment, completion
	Description string `json:"description"`
	UserName    string `json:"userName"`
	Timestamp   int64  `json:"timestamp"`
}
