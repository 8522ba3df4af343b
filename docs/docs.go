// Package docs registers the OpenAPI document served under /swagger. It is
// written in the layout swag emits; keep it in step with the @Router
// annotations in controllers.
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
        "/catalog/categories": {
            "get": {
                "description": "Categories a room can be created with. \"Mixed\" draws from every category.",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List song categories",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "categories": {"type": "array", "items": {"type": "string"}},
                                "songs": {"type": "integer"}
                            }
                        }
                    }
                }
            }
        },
        "/games": {
            "get": {
                "description": "Most recent finished games, newest first",
                "produces": ["application/json"],
                "tags": ["results"],
                "summary": "List finished games",
                "parameters": [
                    {"type": "integer", "description": "Max number of games (default 20, max 100)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.GameResult"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/ping": {
            "get": {
                "description": "Returns a basic message",
                "produces": ["application/json"],
                "tags": ["test"],
                "summary": "Endpoint just pings the server",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "properties": {"message": {"type": "string"}}}
                    }
                }
            }
        },
        "/preferences": {
            "get": {
                "description": "Nickname and category remembered in the session cookie",
                "produces": ["application/json"],
                "tags": ["preferences"],
                "summary": "Get saved preferences",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.Preferences"}}
                }
            },
            "put": {
                "description": "Remembers nickname and category in the session cookie. Empty fields are cleared.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["preferences"],
                "summary": "Save preferences",
                "parameters": [
                    {"description": "Preferences", "name": "preferences", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.Preferences"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.Preferences"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/rooms/new-code": {
            "get": {
                "description": "Returns a generated code that no live room is using",
                "produces": ["application/json"],
                "tags": ["rooms"],
                "summary": "Get a fresh room code",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"code": {"type": "string"}}}}
                }
            }
        },
        "/rooms/{code}": {
            "get": {
                "description": "Returns the state, players, leaderboard and round info of a room",
                "produces": ["application/json"],
                "tags": ["rooms"],
                "summary": "Get a live room",
                "parameters": [
                    {"type": "string", "description": "Room code", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/game.Snapshot"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/rooms/{code}/results": {
            "get": {
                "description": "Final standings of the latest game played in a room. Looks in the Redis cache first and then in the archive.",
                "produces": ["application/json"],
                "tags": ["results"],
                "summary": "Get the last result of a room",
                "parameters": [
                    {"type": "string", "description": "Room code", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.GameResult"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.Preferences": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "nickname": {"type": "string"}
            }
        },
        "errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "game.Snapshot": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "createdAt": {"type": "string"},
                "currentRound": {"type": "integer"},
                "hostId": {"type": "string"},
                "isSongActive": {"type": "boolean"},
                "leaderboard": {"type": "array", "items": {"$ref": "#/definitions/models.Standing"}},
                "players": {"type": "array", "items": {"$ref": "#/definitions/models.Player"}},
                "settings": {"$ref": "#/definitions/models.RoomSettings"},
                "songNumber": {"type": "integer"},
                "songsPerRound": {"type": "integer"},
                "state": {"type": "string", "enum": ["lobby", "playing", "finished"]}
            }
        },
        "models.GameResult": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "finishedAt": {"type": "string"},
                "id": {"type": "string"},
                "roomCode": {"type": "string"},
                "leaderboard": {"type": "array", "items": {"$ref": "#/definitions/models.Standing"}},
                "rounds": {"type": "integer"},
                "songsPlayed": {"type": "integer"},
                "startedAt": {"type": "string"}
            }
        },
        "models.Player": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "isHost": {"type": "boolean"},
                "name": {"type": "string"}
            }
        },
        "models.RoomSettings": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "rounds": {"type": "integer"},
                "timePerSong": {"type": "integer"}
            }
        },
        "models.Standing": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "score": {"type": "integer"}
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
	Title:            "VoxRace API",
	Description:      "Gin-Gonic server for the \"VoxRace\" guess-the-song game. Gameplay runs over socket.io at /socket.io/.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
