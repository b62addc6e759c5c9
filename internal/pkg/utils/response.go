package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/porchfest-map/internal/pkg/errors"
)

// ContentTypeGeoJSON - тип ответа для FeatureCollection
const ContentTypeGeoJSON = "application/geo+json"

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

// Meta - сводка ответа: число элементов и команд рендерера
type Meta struct {
	Total    int `json:"total,omitempty"`
	Commands int `json:"commands,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

// SendGeoJSON отдает уже закодированный GeoJSON без конверта
func SendGeoJSON(c *fiber.Ctx, data []byte) error {
	c.Set(fiber.HeaderContentType, ContentTypeGeoJSON)
	return c.Send(data)
}

// SendError - AppError со своим статусом, остальное как 500 без деталей
func SendError(c *fiber.Ctx, err error) error {
	appErr, ok := errors.AsAppError(err)
	if !ok {
		appErr = errors.ErrInternalServer
	}
	return c.Status(appErr.StatusCode).JSON(ErrorResponse{
		Error: appErr,
	})
}
