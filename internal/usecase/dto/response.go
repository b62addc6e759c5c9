package dto

import "github.com/porchfest-map/internal/domain"

// MapConfigResponse - параметры карты для клиента
type MapConfigResponse struct {
	Style     string               `json:"style"`
	APIKey    string               `json:"api_key,omitempty"`
	Center    domain.Coordinates   `json:"center"`
	Zoom      float64              `json:"zoom"`
	FocusZoom float64              `json:"focus_zoom"`
	Palette   domain.MarkerPalette `json:"palette"`
	Bounds    *domain.BoundingBox  `json:"bounds,omitempty"`
	Points    int                  `json:"points"`
}

// GenresResponse - все жанры датасета
type GenresResponse struct {
	Genres []string `json:"genres"`
	Total  int      `json:"total"`
}

// FilterResult - результат применения фильтра
type FilterResult struct {
	Filter      domain.FilterSelection  `json:"filter"`
	Expression  domain.FilterExpression `json:"expression"`
	VisibleIDs  []domain.PointID        `json:"visible_ids"`
	EvaluatedAt int64                   `json:"evaluated_at"`
}

// SessionResponse - полное состояние сессии (при открытии карты)
type SessionResponse struct {
	SessionID  string                  `json:"session_id"`
	Visited    []domain.PointID        `json:"visited"`
	Bookmarked []domain.PointID        `json:"bookmarked"`
	Result     FilterResult            `json:"result"`
	Selected   *domain.DetailView      `json:"selected,omitempty"`
	Commands   []domain.SurfaceCommand `json:"commands"`
}

// FilterResponse - ответ на изменение фильтра
type FilterResponse struct {
	Result   FilterResult            `json:"result"`
	Commands []domain.SurfaceCommand `json:"commands"`
}

// DetailResponse - ответ на выбор точки или переключение закладки
type DetailResponse struct {
	Detail   domain.DetailView       `json:"detail"`
	Commands []domain.SurfaceCommand `json:"commands"`
}

// ClearVisitedResponse - ответ на очистку истории посещений
type ClearVisitedResponse struct {
	Cleared  int                     `json:"cleared"`
	Commands []domain.SurfaceCommand `json:"commands"`
}

// Серьезность проблемы в датасете
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// ValidationIssue - проблема в одной точке датасета
type ValidationIssue struct {
	PointID  domain.PointID `json:"point_id"`
	Severity string         `json:"severity"`
	Code     string         `json:"code"`
	Message  string         `json:"message"`
}

// ValidationReport - результат проверки датасета
type ValidationReport struct {
	Points   int               `json:"points"`
	Errors   int               `json:"errors"`
	Warnings int               `json:"warnings"`
	Issues   []ValidationIssue `json:"issues"`
}
