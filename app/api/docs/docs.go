// Package docs holds the swagger document served under /swagger.
// It is kept by hand in swag's layout, so update it together with the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Gabriel Ribeiro Silva"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/notes": {
            "get": {
                "security": [{"Bearer": []}],
                "description": "List every note of the caller",
                "produces": ["application/json"],
                "tags": ["Note"],
                "summary": "List notes",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/note.Note"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.Error"}}
                }
            },
            "post": {
                "security": [{"Bearer": []}],
                "description": "Create a note owned by the caller",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Note"],
                "summary": "Create a note",
                "parameters": [
                    {"description": "Note to create", "name": "note", "in": "body", "required": true, "schema": {"$ref": "#/definitions/note.NewNote"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/note.Note"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.Error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.Error"}}
                }
            }
        },
        "/api/notes/{id}": {
            "get": {
                "security": [{"Bearer": []}],
                "description": "Find a note of the caller using its id",
                "produces": ["application/json"],
                "tags": ["Note"],
                "summary": "Find a note",
                "parameters": [
                    {"type": "string", "description": "Note id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/note.Note"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.Error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.Error"}}
                }
            },
            "put": {
                "security": [{"Bearer": []}],
                "description": "Change the title, content or completion of a note of the caller",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Note"],
                "summary": "Update a note",
                "parameters": [
                    {"type": "string", "description": "Note id", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "note", "in": "body", "required": true, "schema": {"$ref": "#/definitions/note.UpdateNote"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/note.Note"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.Error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.Error"}}
                }
            },
            "delete": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["Note"],
                "summary": "Delete a note",
                "parameters": [
                    {"type": "string", "description": "Note id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/notes.Deleted"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.Error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.Error"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/healthcheck.Status"}}
                }
            }
        }
    },
    "definitions": {
        "handler.Error": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string", "example": "Note not found"}
            }
        },
        "healthcheck.Status": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "healthy"}
            }
        },
        "note.NewNote": {
            "type": "object",
            "properties": {
                "completed": {"type": "boolean", "example": false},
                "content": {"type": "string", "example": "my note content"},
                "title": {"type": "string", "example": "my note"}
            }
        },
        "note.Note": {
            "type": "object",
            "properties": {
                "completed": {"type": "boolean", "example": false},
                "content": {"type": "string", "example": "my note content"},
                "createdAt": {"type": "string", "example": "2006-01-02T15:04:05Z"},
                "id": {"type": "integer", "example": 1},
                "title": {"type": "string", "example": "my note"},
                "updatedAt": {"type": "string", "example": "2006-01-02T15:04:05Z"},
                "user_id": {"type": "string", "example": "f8a3c2de-1c55-4c1a-9f6e-3b1c2e0d9a10"}
            }
        },
        "note.UpdateNote": {
            "type": "object",
            "properties": {
                "completed": {"type": "boolean"},
                "content": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "notes.Deleted": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Note deleted"}
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "Note API",
	Description:      "Service to store and handle the notes of authenticated users.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
