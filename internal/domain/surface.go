package domain

// RenderSurface - то, что ядро требует от картографического SDK
type RenderSurface interface {
	// SetFilter задает выражение видимости точек
	SetFilter(expr FilterExpression)

	// FeatureState возвращает текущие флаги точки на рендерере
	FeatureState(id PointID) VisualState

	// SetFeatureState выставляет флаги точки
	SetFeatureState(id PointID, state VisualState)

	// FlyTo центрирует карту на координатах
	FlyTo(center Coordinates, zoom float64)
}

// DetailView - открытая карточка выбранной точки
type DetailView struct {
	Point      PointRecord `json:"point"`
	Visited    bool        `json:"visited"`
	Bookmarked bool        `json:"bookmarked"`
	Color      string      `json:"color"`
}

// Типы команд для клиентского рендерера
const (
	CommandSetFilter       = "set_filter"
	CommandSetFeatureState = "set_feature_state"
	CommandFlyTo           = "fly_to"
)

// SurfaceCommand - одна операция над рендерером, которую применяет браузер
type SurfaceCommand struct {
	Type   string           `json:"type"`
	Filter FilterExpression `json:"filter,omitempty"`
	ID     *PointID         `json:"id,omitempty"`
	State  *VisualState     `json:"state,omitempty"`
	Center *Coordinates     `json:"center,omitempty"`
	Zoom   float64          `json:"zoom,omitempty"`
}
