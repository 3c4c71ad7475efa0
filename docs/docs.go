// Package docs registers the OpenAPI description served under /swagger.
// Keep it in step with the @ annotations on the handlers in internal/api/http.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Backend Team"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/presets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Config"],
                "summary": "List board presets",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/rooms": {
            "post": {
                "description": "Open a room and seat the caller as player 0",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Room"],
                "summary": "Create new room",
                "parameters": [
                    {"description": "Room settings", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/http.CreateRoomRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/rooms/{code}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Room"],
                "summary": "Get room state",
                "parameters": [
                    {"type": "string", "description": "Room Code", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/rooms/{code}/join": {
            "post": {
                "description": "Seat the caller as player 1, or give a seated caller their seat back",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Room"],
                "summary": "Join a room",
                "parameters": [
                    {"type": "string", "description": "Room Code", "name": "code", "in": "path", "required": true},
                    {"description": "Player info", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/http.JoinRoomRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": true}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/rooms/{code}/move": {
            "post": {
                "description": "Illegal targets are ignored and reported with applied=false",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Game"],
                "summary": "Move the caller's pawn",
                "parameters": [
                    {"type": "string", "description": "Room Code", "name": "code", "in": "path", "required": true},
                    {"description": "Move data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.MoveRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/rooms/{code}/reset": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Game"],
                "summary": "Restart the match",
                "parameters": [
                    {"type": "string", "description": "Room Code", "name": "code", "in": "path", "required": true},
                    {"description": "Caller", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.ResetRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/rooms/{code}/state": {
            "put": {
                "description": "Resync a room from a client's copy. Rules are not checked; seats keep their owners",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Game"],
                "summary": "Overwrite the match state",
                "parameters": [
                    {"type": "string", "description": "Room Code", "name": "code", "in": "path", "required": true},
                    {"description": "Caller and state", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.ReplaceStateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": true}},
                    "403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/rooms/{code}/wall": {
            "post": {
                "description": "The turn stays with the caller, who still has to move",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Game"],
                "summary": "Place a wall",
                "parameters": [
                    {"type": "string", "description": "Room Code", "name": "code", "in": "path", "required": true},
                    {"description": "Wall data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.WallRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        }
    },
    "definitions": {
        "game.Player": {
            "type": "object",
            "properties": {
                "uid": {"type": "string"},
                "r": {"type": "integer"},
                "c": {"type": "integer"},
                "walls": {"type": "integer"},
                "goalRow": {"type": "integer"}
            }
        },
        "game.SyncRecord": {
            "type": "object",
            "properties": {
                "boardSize": {"type": "integer"},
                "maxWalls": {"type": "integer"},
                "players": {"type": "array", "items": {"$ref": "#/definitions/game.Player"}},
                "walls": {"type": "array", "items": {"$ref": "#/definitions/game.Wall"}},
                "currentPlayer": {"type": "integer"},
                "winner": {"type": "integer"},
                "hasPlacedWall": {"type": "boolean"}
            }
        },
        "game.Wall": {
            "type": "object",
            "properties": {
                "r": {"type": "integer"},
                "c": {"type": "integer"},
                "type": {"type": "string", "enum": ["h", "v"]}
            }
        },
        "http.CreateRoomRequest": {
            "type": "object",
            "properties": {
                "boardSize": {"type": "integer"},
                "maxWalls": {"type": "integer"},
                "playerName": {"type": "string"},
                "preset": {"type": "string"}
            }
        },
        "http.JoinRoomRequest": {
            "type": "object",
            "properties": {
                "playerId": {"type": "string"},
                "playerName": {"type": "string"}
            }
        },
        "http.MoveRequest": {
            "type": "object",
            "required": ["c", "playerId", "r"],
            "properties": {
                "c": {"type": "integer"},
                "playerId": {"type": "string"},
                "r": {"type": "integer"}
            }
        },
        "http.ReplaceStateRequest": {
            "type": "object",
            "required": ["playerId", "state"],
            "properties": {
                "playerId": {"type": "string"},
                "state": {"$ref": "#/definitions/game.SyncRecord"}
            }
        },
        "http.ResetRequest": {
            "type": "object",
            "required": ["playerId"],
            "properties": {
                "playerId": {"type": "string"}
            }
        },
        "http.WallRequest": {
            "type": "object",
            "required": ["c", "playerId", "r", "type"],
            "properties": {
                "c": {"type": "integer"},
                "playerId": {"type": "string"},
                "r": {"type": "integer"},
                "type": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "NEOBLOCK API",
	Description:      "Rooms and live state for two-player wall-and-pawn matches (Go + Gin)",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
