package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/porchfest-map/internal/delivery/http/middleware"
	"github.com/porchfest-map/internal/pkg/errors"
	"github.com/porchfest-map/internal/pkg/utils"
	"github.com/porchfest-map/internal/pkg/validator"
	"github.com/porchfest-map/internal/usecase"
	"github.com/porchfest-map/internal/usecase/dto"
	"go.uber.org/zap"
)

// SessionHandler - действия пользователя над картой в рамках сессии
type SessionHandler struct {
	sessions *usecase.SessionManager
	logger   *zap.Logger
}

// NewSessionHandler - создание нового SessionHandler
func NewSessionHandler(sessions *usecase.SessionManager, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		logger:   logger,
	}
}

// withSession выполняет fn в сессии запроса
func (h *SessionHandler) withSession(c *fiber.Ctx, fn func(s *usecase.Session) error) error {
	id := middleware.SessionID(c)
	if id == "" {
		return errors.ErrSessionRequired
	}
	return h.sessions.Do(c.UserContext(), id, fn)
}

// GetSession godoc
// @Summary Состояние сессии
// @Description Вызывается при открытии карты: история, фильтр, открытая карточка и полный набор команд для рендерера
// @Tags Session
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/session [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	var resp dto.SessionResponse

	err := h.withSession(c, func(s *usecase.Session) error {
		s.Reattach()

		r := s.Reconciler()
		state := r.State()
		resp = dto.SessionResponse{
			SessionID:  s.ID,
			Visited:    state.Visited.Sorted(),
			Bookmarked: state.Bookmarked.Sorted(),
			Result:     r.LastResult(),
			Commands:   s.Surface().Drain(),
		}
		if detail, ok := r.Selected(); ok {
			resp.Selected = &detail
		}
		return nil
	})
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}

// ApplyFilter godoc
// @Summary Изменить фильтры
// @Description Пересобирает фильтр видимости (поиск, жанры, играет сейчас, только закладки)
// @Tags Session
// @Accept json
// @Produce json
// @Param request body dto.FilterRequest true "Фильтры"
// @Success 200 {object} utils.SuccessResponse{data=dto.FilterResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/session/filter [put]
func (h *SessionHandler) ApplyFilter(c *fiber.Ctx) error {
	var req dto.FilterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	var resp dto.FilterResponse
	err := h.withSession(c, func(s *usecase.Session) error {
		resp.Result = s.Reconciler().ApplyFilter(req.ToSelection())
		resp.Commands = s.Surface().Drain()
		return nil
	})
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, &utils.Meta{
		Total:    len(resp.Result.VisibleIDs),
		Commands: len(resp.Commands),
	})
}

// Refresh godoc
// @Summary Пересчитать фильтр
// @Description Пересчитывает текущий фильтр на текущее время (для "играет сейчас")
// @Tags Session
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.FilterResponse}
// @Router /api/v1/session/refresh [post]
func (h *SessionHandler) Refresh(c *fiber.Ctx) error {
	var resp dto.FilterResponse
	err := h.withSession(c, func(s *usecase.Session) error {
		resp.Result = s.Reconciler().Refresh()
		resp.Commands = s.Surface().Drain()
		return nil
	})
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, &utils.Meta{
		Total:    len(resp.Result.VisibleIDs),
		Commands: len(resp.Commands),
	})
}

// SelectPoint godoc
// @Summary Выбрать точку
// @Description Клик по точке: отмечает посещение, центрирует карту и открывает карточку
// @Tags Session
// @Produce json
// @Param id path int true "ID точки"
// @Success 200 {object} utils.SuccessResponse{data=dto.DetailResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/session/points/{id}/select [post]
func (h *SessionHandler) SelectPoint(c *fiber.Ctx) error {
	id, err := parsePointID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var resp dto.DetailResponse
	err = h.withSession(c, func(s *usecase.Session) error {
		detail, err := s.Reconciler().Select(c.UserContext(), id)
		if err != nil {
			return err
		}
		resp.Detail = detail
		resp.Commands = s.Surface().Drain()
		return nil
	})
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}

// ToggleBookmark godoc
// @Summary Переключить закладку
// @Description Переключает закладку точки, открытой в карточке
// @Tags Session
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.DetailResponse}
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/session/bookmark [post]
func (h *SessionHandler) ToggleBookmark(c *fiber.Ctx) error {
	var resp dto.DetailResponse
	err := h.withSession(c, func(s *usecase.Session) error {
		detail, err := s.Reconciler().ToggleBookmark(c.UserContext())
		if err != nil {
			return err
		}
		resp.Detail = detail
		resp.Commands = s.Surface().Drain()
		return nil
	})
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}

// CloseDetail godoc
// @Summary Закрыть карточку
// @Tags Session
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/session/detail/close [post]
func (h *SessionHandler) CloseDetail(c *fiber.Ctx) error {
	err := h.withSession(c, func(s *usecase.Session) error {
		s.Reconciler().CloseDetail()
		return nil
	})
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"closed": true}, nil)
}

// ClearVisited godoc
// @Summary Очистить историю посещений
// @Description Сбрасывает visited у всех точек. Закладки не меняются.
// @Tags Session
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.ClearVisitedResponse}
// @Router /api/v1/session/visited [delete]
func (h *SessionHandler) ClearVisited(c *fiber.Ctx) error {
	var resp dto.ClearVisitedResponse
	err := h.withSession(c, func(s *usecase.Session) error {
		resp.Cleared = s.Reconciler().ClearVisited(c.UserContext())
		resp.Commands = s.Surface().Drain()
		return nil
	})
	if err != nil {
		return utils.SendError(c, err)
	}

	h.logger.Debug("Visited history cleared",
		zap.String("session_id", middleware.SessionID(c)),
		zap.Int("cleared", resp.Cleared),
	)
	return utils.SendSuccess(c, resp, nil)
}
