// Package docs - описание Porchfest Map API для swagger UI.
// Шаблон ведется вручную вместе с аннотациями в internal/delivery/http/handler.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/genres": {
            "get": {
                "description": "Все непустые жанры, отсортированные. Используются для фильтра жанров.",
                "produces": ["application/json"],
                "tags": ["Map"],
                "summary": "Жанры датасета",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.GenresResponse"}}
                }
            }
        },
        "/api/v1/map/config": {
            "get": {
                "description": "Стиль, ключ API, центр, масштаб и цвета маркеров для клиентской карты",
                "produces": ["application/json"],
                "tags": ["Map"],
                "summary": "Параметры карты",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MapConfigResponse"}}
                }
            }
        },
        "/api/v1/points": {
            "get": {
                "description": "Весь датасет выступлений как FeatureCollection. id фичи совпадает с id точки.",
                "produces": ["application/json"],
                "tags": ["Map"],
                "summary": "Точки карты в GeoJSON",
                "responses": {
                    "200": {"description": "GeoJSON FeatureCollection", "schema": {"type": "object"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/points/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Map"],
                "summary": "Точка по id",
                "parameters": [
                    {"type": "integer", "description": "ID точки", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.PointRecord"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/session": {
            "get": {
                "description": "Вызывается при открытии карты: история, фильтр, открытая карточка и полный набор команд для рендерера",
                "produces": ["application/json"],
                "tags": ["Session"],
                "summary": "Состояние сессии",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SessionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/session/bookmark": {
            "post": {
                "description": "Переключает закладку точки, открытой в карточке",
                "produces": ["application/json"],
                "tags": ["Session"],
                "summary": "Переключить закладку",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DetailResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/session/detail/close": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Session"],
                "summary": "Закрыть карточку",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}
                }
            }
        },
        "/api/v1/session/filter": {
            "put": {
                "description": "Пересобирает фильтр видимости (поиск, жанры, играет сейчас, только закладки)",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Session"],
                "summary": "Изменить фильтры",
                "parameters": [
                    {"description": "Фильтры", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.FilterRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FilterResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/session/points/{id}/select": {
            "post": {
                "description": "Клик по точке: отмечает посещение, центрирует карту и открывает карточку",
                "produces": ["application/json"],
                "tags": ["Session"],
                "summary": "Выбрать точку",
                "parameters": [
                    {"type": "integer", "description": "ID точки", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DetailResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/session/refresh": {
            "post": {
                "description": "Пересчитывает текущий фильтр на текущее время (для \"играет сейчас\")",
                "produces": ["application/json"],
                "tags": ["Session"],
                "summary": "Пересчитать фильтр",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FilterResponse"}}
                }
            }
        },
        "/api/v1/session/visited": {
            "delete": {
                "description": "Сбрасывает visited у всех точек. Закладки не меняются.",
                "produces": ["application/json"],
                "tags": ["Session"],
                "summary": "Очистить историю посещений",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ClearVisitedResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Coordinates": {
            "type": "object",
            "properties": {
                "lat": {"type": "number"},
                "lon": {"type": "number"}
            }
        },
        "domain.PointRecord": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "artist_name": {"type": "string"},
                "genres": {"type": "array", "items": {"type": "string"}},
                "time_window": {
                    "type": "object",
                    "properties": {
                        "start_time": {"type": "integer"},
                        "end_time": {"type": "integer"}
                    }
                },
                "location": {
                    "type": "object",
                    "properties": {
                        "address": {"type": "string"},
                        "google_maps_link": {"type": "string"}
                    }
                },
                "coordinates": {"$ref": "#/definitions/domain.Coordinates"}
            }
        },
        "domain.DetailView": {
            "type": "object",
            "properties": {
                "point": {"$ref": "#/definitions/domain.PointRecord"},
                "visited": {"type": "boolean"},
                "bookmarked": {"type": "boolean"},
                "color": {"type": "string"}
            }
        },
        "domain.SurfaceCommand": {
            "type": "object",
            "properties": {
                "type": {"type": "string", "enum": ["set_filter", "set_feature_state", "fly_to"]},
                "filter": {"type": "array", "items": {}},
                "id": {"type": "integer"},
                "state": {
                    "type": "object",
                    "properties": {
                        "visited": {"type": "boolean"},
                        "bookmarked": {"type": "boolean"}
                    }
                },
                "center": {"$ref": "#/definitions/domain.Coordinates"},
                "zoom": {"type": "number"}
            }
        },
        "dto.FilterRequest": {
            "type": "object",
            "properties": {
                "search_text": {"type": "string", "maxLength": 200},
                "genres": {"type": "array", "maxItems": 100, "items": {"type": "string"}},
                "only_currently_playing": {"type": "boolean"},
                "only_bookmarked": {"type": "boolean"}
            }
        },
        "dto.FilterResult": {
            "type": "object",
            "properties": {
                "filter": {"type": "object"},
                "expression": {"type": "array", "items": {}},
                "visible_ids": {"type": "array", "items": {"type": "integer"}},
                "evaluated_at": {"type": "integer"}
            }
        },
        "dto.FilterResponse": {
            "type": "object",
            "properties": {
                "result": {"$ref": "#/definitions/dto.FilterResult"},
                "commands": {"type": "array", "items": {"$ref": "#/definitions/domain.SurfaceCommand"}}
            }
        },
        "dto.DetailResponse": {
            "type": "object",
            "properties": {
                "detail": {"$ref": "#/definitions/domain.DetailView"},
                "commands": {"type": "array", "items": {"$ref": "#/definitions/domain.SurfaceCommand"}}
            }
        },
        "dto.ClearVisitedResponse": {
            "type": "object",
            "properties": {
                "cleared": {"type": "integer"},
                "commands": {"type": "array", "items": {"$ref": "#/definitions/domain.SurfaceCommand"}}
            }
        },
        "dto.SessionResponse": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "visited": {"type": "array", "items": {"type": "integer"}},
                "bookmarked": {"type": "array", "items": {"type": "integer"}},
                "result": {"$ref": "#/definitions/dto.FilterResult"},
                "selected": {"$ref": "#/definitions/domain.DetailView"},
                "commands": {"type": "array", "items": {"$ref": "#/definitions/domain.SurfaceCommand"}}
            }
        },
        "dto.GenresResponse": {
            "type": "object",
            "properties": {
                "genres": {"type": "array", "items": {"type": "string"}},
                "total": {"type": "integer"}
            }
        },
        "dto.MapConfigResponse": {
            "type": "object",
            "properties": {
                "style": {"type": "string"},
                "api_key": {"type": "string"},
                "center": {"$ref": "#/definitions/domain.Coordinates"},
                "zoom": {"type": "number"},
                "focus_zoom": {"type": "number"},
                "palette": {"type": "object"},
                "bounds": {"type": "object"},
                "points": {"type": "integer"}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "object"}
            }
        },
        "utils.SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "meta": {"type": "object"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Porchfest Map API",
	Description:      "Сервис интерактивной карты выступлений фестиваля.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
