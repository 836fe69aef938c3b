// Package apidocs registers the OpenAPI document served under /swagger.
package apidocs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["application/json"],
                "summary": "Service banner",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/apidocs.MessageResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "summary": "Readiness: database ping and pool stats",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/apidocs.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/apidocs.MessageResponse"}}
                }
            }
        },
        "/users": {
            "get": {
                "produces": ["application/json"],
                "summary": "List users ordered by id",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/apidocs.UsersListResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/apidocs.MessageResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Create a user",
                "parameters": [
                    {"in": "body", "name": "user", "required": true, "schema": {"$ref": "#/definitions/user.CreateUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/apidocs.UserItemResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apidocs.MessageResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/apidocs.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/apidocs.MessageResponse"}}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "produces": ["application/json"],
                "summary": "Get a user",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/apidocs.UserItemResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apidocs.MessageResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Update name and/or email",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "user", "required": true, "schema": {"$ref": "#/definitions/user.UpdateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/apidocs.UserItemResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apidocs.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apidocs.MessageResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/apidocs.MessageResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "summary": "Delete a user",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/apidocs.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apidocs.MessageResponse"}}
                }
            }
        }
    },
    "definitions": {
        "apidocs.UserResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "name": {"type": "string", "example": "Jane Doe"},
                "email": {"type": "string", "example": "jane@example.com"},
                "created_at": {"type": "string", "example": "2024-01-01T00:00:00Z"}
            }
        },
        "apidocs.UsersListResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "success"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/apidocs.UserResponse"}}
            }
        },
        "apidocs.UserItemResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "success"},
                "data": {"$ref": "#/definitions/apidocs.UserResponse"}
            }
        },
        "apidocs.MessageResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "error"},
                "message": {"type": "string", "example": "User not found"}
            }
        },
        "apidocs.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "success"},
                "data": {"type": "object"}
            }
        },
        "user.CreateUserRequest": {
            "type": "object",
            "required": ["name", "email"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "user.UpdateUserRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Users API",
	Description:      "CRUD over the users table.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
