// Package docs holds the OpenAPI template served at /swagger. Keep it in step
// with the swag annotations on the handlers and in cmd/api/main.go.
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
        "/auth": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.accessTokenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "204": {"description": "No Content"}
                }
            }
        },
        "/auth/refresh": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Refresh the access token",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.accessTokenResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.readinessResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.readinessResponse"}}
                }
            }
        },
        "/notes": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Every note carries the username of its owner, or \"unknown\" when the owner is gone.",
                "produces": ["application/json"],
                "tags": ["notes"],
                "summary": "List notes",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.noteResponse"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["notes"],
                "summary": "Create a note",
                "parameters": [
                    {"description": "New note", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createNoteRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["notes"],
                "summary": "Delete a note",
                "parameters": [
                    {"description": "Note id", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.deleteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["notes"],
                "summary": "Update a note",
                "parameters": [
                    {"description": "Note update", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateNoteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.User"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Roles default to [\"Employee\"] when absent, empty or not a list.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create a user",
                "parameters": [
                    {"description": "New user", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "A request without an id is answered with 200 and a prompt message.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Delete a user",
                "parameters": [
                    {"description": "User id", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.deleteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "description": "Replaces username, roles and active status. The password is re-hashed only when supplied.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update a user",
                "parameters": [
                    {"description": "User update", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "active": {"type": "boolean"},
                "created_at": {"type": "string"},
                "id": {"type": "string"},
                "roles": {"type": "array", "items": {"type": "string"}},
                "updated_at": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "handler.accessTokenResponse": {
            "type": "object",
            "properties": {
                "accessToken": {"type": "string"}
            }
        },
        "handler.createNoteRequest": {
            "type": "object",
            "properties": {
                "text": {"type": "string"},
                "title": {"type": "string"},
                "user": {"type": "string"}
            }
        },
        "handler.createUserRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string"},
                "roles": {"type": "array", "items": {"type": "string"}},
                "username": {"type": "string"}
            }
        },
        "handler.deleteRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}
            }
        },
        "handler.dependencyStatus": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "handler.messageResponse": {
            "type": "object",
            "properties": {
                "fields": {"type": "array", "items": {"$ref": "#/definitions/domain.FieldError"}},
                "message": {"type": "string"}
            }
        },
        "handler.noteResponse": {
            "type": "object",
            "properties": {
                "completed": {"type": "boolean"},
                "created_at": {"type": "string"},
                "id": {"type": "string"},
                "text": {"type": "string"},
                "ticket": {"type": "integer"},
                "title": {"type": "string"},
                "updated_at": {"type": "string"},
                "user": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "handler.readinessResponse": {
            "type": "object",
            "properties": {
                "dependencies": {"type": "object", "additionalProperties": {"$ref": "#/definitions/handler.dependencyStatus"}},
                "status": {"type": "string"}
            }
        },
        "handler.updateNoteRequest": {
            "type": "object",
            "properties": {
                "completed": {"type": "boolean"},
                "id": {"type": "string"},
                "text": {"type": "string"},
                "title": {"type": "string"},
                "user": {"type": "string"}
            }
        },
        "handler.updateUserRequest": {
            "type": "object",
            "properties": {
                "active": {"type": "boolean"},
                "id": {"type": "string"},
                "password": {"type": "string"},
                "roles": {"type": "array", "items": {"type": "string"}},
                "username": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the access token.",
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
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Tech Notes API",
	Description:      "Users, notes and authentication for the tech notes application.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
