package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/porchfest-map/internal/pkg/errors"
	"github.com/porchfest-map/internal/pkg/utils"
	"github.com/porchfest-map/internal/pkg/validator"
	"github.com/porchfest-map/internal/usecase"
	"github.com/porchfest-map/internal/usecase/dto"
	"go.uber.org/zap"
)

// MapHandler - данные карты, общие для всех сессий
type MapHandler struct {
	mapUC  *usecase.MapUseCase
	logger *zap.Logger
}

// NewMapHandler - создание нового MapHandler
func NewMapHandler(mapUC *usecase.MapUseCase, logger *zap.Logger) *MapHandler {
	return &MapHandler{
		mapUC:  mapUC,
		logger: logger,
	}
}

// GetConfig godoc
// @Summary Параметры карты
// @Description Стиль, ключ API, центр, масштаб и цвета маркеров для клиентской карты
// @Tags Map
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.MapConfigResponse}
// @Router /api/v1/map/config [get]
func (h *MapHandler) GetConfig(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.mapUC.Config(), nil)
}

// GetPoints godoc
// @Summary Точки карты в GeoJSON
// @Description Весь датасет выступлений как FeatureCollection. id фичи совпадает с id точки.
// @Tags Map
// @Produce json
// @Success 200 {object} map[string]interface{} "GeoJSON FeatureCollection"
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/points [get]
func (h *MapHandler) GetPoints(c *fiber.Ctx) error {
	data, err := h.mapUC.GeoJSON()
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendGeoJSON(c, data)
}

// GetPoint godoc
// @Summary Точка по id
// @Tags Map
// @Produce json
// @Param id path int true "ID точки"
// @Success 200 {object} utils.SuccessResponse{data=domain.PointRecord}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/points/{id} [get]
func (h *MapHandler) GetPoint(c *fiber.Ctx) error {
	id, err := parsePointID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	point, err := h.mapUC.GetPoint(id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, point, nil)
}

// GetGenres godoc
// @Summary Жанры датасета
// @Description Все непустые жанры, отсортированные. Используются для фильтра жанров.
// @Tags Map
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.GenresResponse}
// @Router /api/v1/genres [get]
func (h *MapHandler) GetGenres(c *fiber.Ctx) error {
	result := h.mapUC.Genres()
	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// parsePointID читает :id из пути
func parsePointID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, errors.ErrInvalidPointID
	}

	req := dto.PointIDRequest{ID: id}
	if err := validator.Validate(&req); err != nil {
		return 0, errors.ErrInvalidPointID
	}
	return id, nil
}
