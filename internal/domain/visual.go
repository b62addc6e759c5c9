package domain

// Цвета маркеров
const (
	DefaultMarkerColor    = "#3B9EFF"
	VisitedMarkerColor    = "#5A6169"
	BookmarkedMarkerColor = "#f3bb01"
)

// VisualState - флаги feature-state точки на рендерере.
// Производный кеш от InteractionState.
type VisualState struct {
	Visited    bool `json:"visited"`
	Bookmarked bool `json:"bookmarked"`
}

// Color - цвет маркера: закладка важнее посещения, посещение важнее цвета по умолчанию
func (v VisualState) Color() string {
	switch {
	case v.Bookmarked:
		return BookmarkedMarkerColor
	case v.Visited:
		return VisitedMarkerColor
	default:
		return DefaultMarkerColor
	}
}

// MarkerPalette - цвета для клиента
type MarkerPalette struct {
	Default    string `json:"default"`
	Visited    string `json:"visited"`
	Bookmarked string `json:"bookmarked"`
}

// DefaultPalette возвращает палитру маркеров
func DefaultPalette() MarkerPalette {
	return MarkerPalette{
		Default:    DefaultMarkerColor,
		Visited:    VisitedMarkerColor,
		Bookmarked: BookmarkedMarkerColor,
	}
}
