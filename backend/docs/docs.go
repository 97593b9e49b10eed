// Package docs registers the OpenAPI document served under /docs.
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
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "input", "required": true, "schema": {"$ref": "#/definitions/controllers.CredentialsRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.User"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "User login",
                "parameters": [{"in": "body", "name": "input", "required": true, "schema": {"$ref": "#/definitions/controllers.CredentialsRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.TokenPair"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": ["auth"],
                "summary": "Issue a new access token",
                "parameters": [{"in": "body", "name": "input", "required": true, "schema": {"$ref": "#/definitions/controllers.RefreshRequest"}}],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/auth/forgot": {
            "post": {
                "tags": ["auth"],
                "summary": "Request a password reset",
                "parameters": [{"in": "body", "name": "input", "required": true, "schema": {"$ref": "#/definitions/controllers.ForgotRequest"}}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/auth/reset": {
            "post": {
                "tags": ["auth"],
                "summary": "Reset password",
                "parameters": [{"in": "body", "name": "input", "required": true, "schema": {"$ref": "#/definitions/controllers.ResetRequest"}}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/users/me": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["users"],
                "summary": "Get own profile",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}}}
            },
            "patch": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["users"],
                "summary": "Update own email",
                "parameters": [{"in": "body", "name": "input", "required": true, "schema": {"$ref": "#/definitions/controllers.UpdateProfileRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}}}
            }
        },
        "/users/{id}/role": {
            "patch": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["users"],
                "summary": "Change a user's role",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "input", "required": true, "schema": {"$ref": "#/definitions/controllers.UpdateRoleRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}}}
            }
        },
        "/habits": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["habits"],
                "summary": "List own habits",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Habit"}}}}
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["habits"],
                "summary": "Create a habit",
                "parameters": [{"in": "body", "name": "input", "required": true, "schema": {"$ref": "#/definitions/controllers.HabitRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Habit"}}}
            }
        },
        "/habits/export": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["habits"],
                "summary": "Export check history",
                "produces": ["text/csv", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "parameters": [{"enum": ["csv", "xlsx"], "type": "string", "default": "csv", "name": "format", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/habits/{habitId}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["habits"],
                "summary": "Get a habit",
                "parameters": [{"type": "string", "name": "habitId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Habit"}}}
            },
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["habits"],
                "summary": "Update a habit",
                "parameters": [
                    {"type": "string", "name": "habitId", "in": "path", "required": true},
                    {"in": "body", "name": "input", "required": true, "schema": {"$ref": "#/definitions/controllers.HabitPatchRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Habit"}}}
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["habits"],
                "summary": "Delete a habit",
                "parameters": [{"type": "string", "name": "habitId", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/habits/{habitId}/check": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["habits"],
                "summary": "Check a habit for today",
                "parameters": [{"type": "string", "name": "habitId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.CheckResult"}}}
            }
        },
        "/habits/{habitId}/streak": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["habits"],
                "summary": "Current streak of a habit",
                "parameters": [{"type": "string", "name": "habitId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StreakResult"}}}
            }
        },
        "/metrics": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["metrics"],
                "summary": "Aggregate metrics of own habits",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Metrics"}}}
            }
        },
        "/categories": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["categories"],
                "summary": "List categories",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Category"}}}}
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["categories"],
                "summary": "Create a category",
                "parameters": [{"in": "body", "name": "input", "required": true, "schema": {"$ref": "#/definitions/controllers.CategoryRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Category"}}}
            }
        },
        "/categories/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["categories"],
                "summary": "Get a category",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Category"}}}
            },
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["categories"],
                "summary": "Rename a category",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "input", "required": true, "schema": {"$ref": "#/definitions/controllers.CategoryRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Category"}}}
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["categories"],
                "summary": "Delete a category",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/notifications": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["notifications"],
                "summary": "List own reminders",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Reminder"}}}}
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["notifications"],
                "summary": "Schedule a reminder",
                "parameters": [{"in": "body", "name": "input", "required": true, "schema": {"$ref": "#/definitions/controllers.ReminderRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Reminder"}}}
            }
        },
        "/notifications/{id}": {
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["notifications"],
                "summary": "Delete a reminder",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "429": {"description": "Too Many Requests"}}
            }
        }
    },
    "definitions": {
        "controllers.CredentialsRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string", "example": "user@example.com"}, "password": {"type": "string", "minLength": 6}}
        },
        "controllers.RefreshRequest": {"type": "object", "required": ["refreshToken"], "properties": {"refreshToken": {"type": "string"}}},
        "controllers.ForgotRequest": {"type": "object", "required": ["email"], "properties": {"email": {"type": "string"}}},
        "controllers.ResetRequest": {
            "type": "object",
            "required": ["token", "password"],
            "properties": {"token": {"type": "string"}, "password": {"type": "string", "minLength": 6}}
        },
        "controllers.UpdateProfileRequest": {"type": "object", "required": ["email"], "properties": {"email": {"type": "string"}}},
        "controllers.UpdateRoleRequest": {"type": "object", "required": ["role"], "properties": {"role": {"type": "string", "enum": ["user", "admin"]}}},
        "controllers.HabitRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string", "minLength": 3}, "description": {"type": "string"}}
        },
        "controllers.HabitPatchRequest": {"type": "object", "properties": {"name": {"type": "string", "minLength": 3}, "description": {"type": "string"}}},
        "controllers.CategoryRequest": {"type": "object", "required": ["name"], "properties": {"name": {"type": "string", "minLength": 3}}},
        "controllers.ReminderRequest": {
            "type": "object",
            "required": ["habitId", "date"],
            "properties": {"habitId": {"type": "string"}, "date": {"type": "string", "example": "2025-08-02T09:00:00Z"}}
        },
        "models.User": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "email": {"type": "string"}, "role": {"type": "string"}, "createdAt": {"type": "string"}}
        },
        "models.TokenPair": {"type": "object", "properties": {"accessToken": {"type": "string"}, "refreshToken": {"type": "string"}}},
        "models.Habit": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "userId": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "models.CheckResult": {
            "type": "object",
            "properties": {"habitId": {"type": "string"}, "date": {"type": "string"}, "currentStreak": {"type": "integer"}}
        },
        "models.StreakResult": {
            "type": "object",
            "properties": {"habitId": {"type": "string"}, "currentStreak": {"type": "integer"}, "lastCheckDate": {"type": "string"}}
        },
        "models.Metrics": {
            "type": "object",
            "properties": {"totalHabits": {"type": "integer"}, "totalChecks": {"type": "integer"}, "longestStreak": {"type": "integer"}}
        },
        "models.Category": {"type": "object", "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "createdAt": {"type": "string"}}},
        "models.Reminder": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "habitId": {"type": "string"}, "date": {"type": "string"}, "sentAt": {"type": "string"}}
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}, "message": {"type": "string"}, "errors": {"type": "array", "items": {"type": "string"}}}
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Habit Tracker API",
	Description:      "Habits, daily check-ins, streaks and reminders.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
