// Package docs registers the OpenAPI description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/login": {
            "post": {
                "description": "Issues a bearer token and sets it as a cookie for the map page",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Operator login",
                "parameters": [
                    {
                        "description": "operator password",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.LoginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/clients": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns every stored client ordered by name",
                "produces": ["application/json"],
                "tags": ["clients"],
                "summary": "List clients",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Client"}}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["clients"],
                "summary": "Delete all clients",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/clients/import": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Parses an .xlsx or .csv upload and replaces the stored dataset in one transaction",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["clients"],
                "summary": "Replace all clients from a spreadsheet",
                "parameters": [
                    {"type": "file", "description": "spreadsheet with the Cliente, Razon social, Domicilio, Coord X, Coord Y, Identificador and Anulado columns", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ImportResult"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/clients/search": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Case-insensitive substring match on name, legal name and identifier of mappable clients",
                "produces": ["application/json"],
                "tags": ["clients"],
                "summary": "Search clients",
                "parameters": [{"type": "string", "description": "search term", "name": "q", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Client"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/clients/ranked": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Matches name and legal name and orders hits by name prefix, legal name prefix, then substring",
                "produces": ["application/json"],
                "tags": ["clients"],
                "summary": "Ranked client search",
                "parameters": [{"type": "string", "description": "search term", "name": "q", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Client"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/clients/stats": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["clients"],
                "summary": "Client statistics",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Stats"}}}
            }
        },
        "/clients/export.xlsx": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "The workbook uses the import column layout and can be imported back",
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["clients"],
                "summary": "Download clients as a spreadsheet",
                "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}
            }
        },
        "/clients/export.pdf": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/pdf"],
                "tags": ["clients"],
                "summary": "Download clients as a PDF listing",
                "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}
            }
        },
        "/map": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Center, zoom and markers for the map, with navigation links and counters",
                "produces": ["application/json"],
                "tags": ["map"],
                "summary": "Map view",
                "parameters": [
                    {"type": "string", "description": "search term", "name": "q", "in": "query"},
                    {"type": "integer", "description": "client id to center on", "name": "focus", "in": "query"},
                    {"type": "boolean", "description": "include voided clients", "name": "show_voided", "in": "query"},
                    {"type": "boolean", "description": "only active clients, wins over show_voided", "name": "only_active", "in": "query"},
                    {"type": "integer", "description": "maximum number of markers", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.MapResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/map/page": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Interactive map rendered with Google Maps, or Leaflet and OpenStreetMap when no API key is configured",
                "produces": ["text/html"],
                "tags": ["map"],
                "summary": "Map page",
                "parameters": [{"type": "string", "description": "google or osm", "name": "provider", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.LoginRequest": {
            "type": "object",
            "required": ["password"],
            "properties": {"password": {"type": "string"}}
        },
        "handler.LoginResponse": {
            "type": "object",
            "properties": {"expires_at": {"type": "string"}, "token": {"type": "string"}}
        },
        "models.Client": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "client": {"type": "string"},
                "coord_x": {"type": "number"},
                "coord_y": {"type": "number"},
                "created_at": {"type": "string"},
                "id": {"type": "integer"},
                "identifier": {"type": "string"},
                "legal_name": {"type": "string"},
                "updated_at": {"type": "string"},
                "voided": {"type": "boolean"}
            }
        },
        "models.ImportReport": {
            "type": "object",
            "properties": {
                "active": {"type": "integer"},
                "available_columns": {"type": "array", "items": {"type": "string"}},
                "file_name": {"type": "string"},
                "missing_columns": {"type": "array", "items": {"type": "string"}},
                "rows": {"type": "integer"},
                "unrecognized_voided": {"type": "array", "items": {"type": "string"}},
                "voided": {"type": "integer"},
                "warnings": {"type": "array", "items": {"$ref": "#/definitions/models.ValidationWarning"}}
            }
        },
        "models.ImportResult": {
            "type": "object",
            "properties": {
                "inserted": {"type": "integer"},
                "report": {"$ref": "#/definitions/models.ImportReport"}
            }
        },
        "models.MapResult": {
            "type": "object",
            "properties": {
                "active": {"type": "integer"},
                "focus": {"$ref": "#/definitions/models.Client"},
                "matches": {"type": "integer"},
                "selected": {"type": "integer"},
                "term": {"type": "string"},
                "total_mappable": {"type": "integer"},
                "view": {"$ref": "#/definitions/models.MapView"},
                "voided": {"type": "integer"}
            }
        },
        "models.MapView": {
            "type": "object",
            "properties": {
                "center": {"$ref": "#/definitions/models.Point"},
                "markers": {"type": "array", "items": {"$ref": "#/definitions/models.Marker"}},
                "zoom": {"type": "integer"}
            }
        },
        "models.Marker": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "client": {"type": "string"},
                "directions_url": {"type": "string"},
                "id": {"type": "integer"},
                "identifier": {"type": "string"},
                "lat": {"type": "number"},
                "legal_name": {"type": "string"},
                "lon": {"type": "number"},
                "search_url": {"type": "string"},
                "status": {"type": "string"},
                "title": {"type": "string"},
                "voided": {"type": "boolean"},
                "waze_url": {"type": "string"}
            }
        },
        "models.Point": {
            "type": "object",
            "properties": {"lat": {"type": "number"}, "lon": {"type": "number"}}
        },
        "models.Stats": {
            "type": "object",
            "properties": {
                "active": {"type": "integer"},
                "latest_created_at": {"type": "string"},
                "mappable": {"type": "integer"},
                "total": {"type": "integer"},
                "voided": {"type": "integer"},
                "with_coordinates": {"type": "integer"}
            }
        },
        "models.ValidationWarning": {
            "type": "object",
            "properties": {
                "column": {"type": "string"},
                "message": {"type": "string"},
                "row": {"type": "integer"},
                "value": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Client Map API",
	Description:      "Client records with spreadsheet import, ranked search and an interactive map.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
