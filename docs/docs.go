// Package docs is generated by swag from the handler annotations.
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
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "API is healthy", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {
                    "200": {"description": "API is alive", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API and its datastore are ready to serve traffic",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Datastore unreachable", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/webhook/notifications": {
            "get": {
                "description": "Returns actions recorded since the previous poll, newest first, and advances the watermark",
                "produces": ["application/json"],
                "tags": ["Webhook"],
                "summary": "Poll new repository activity",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.notificationResp"}}},
                    "500": {"description": "Failed to fetch notifications", "schema": {"$ref": "#/definitions/response.ErrorResp"}}
                }
            }
        },
        "/webhook/receiver": {
            "post": {
                "description": "Accepts a GitHub push or pull_request delivery and records it as an action",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Webhook"],
                "summary": "Receive a GitHub webhook delivery",
                "parameters": [
                    {"type": "string", "description": "GitHub event kind (push, pull_request)", "name": "X-GitHub-Event", "in": "header", "required": true},
                    {"description": "GitHub webhook payload", "name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.StatusResp"}},
                    "400": {"description": "Invalid delivery", "schema": {"$ref": "#/definitions/response.ErrorResp"}},
                    "413": {"description": "Payload too large", "schema": {"$ref": "#/definitions/response.ErrorResp"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/response.ErrorResp"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/response.ErrorResp"}}
                }
            }
        }
    },
    "definitions": {
        "http.notificationResp": {
            "type": "object",
            "properties": {
                "action": {"type": "string", "example": "PUSH"},
                "author": {"type": "string", "example": "alice"},
                "from_branch": {"type": "string", "x-nullable": true, "example": "feature"},
                "to_branch": {"type": "string", "example": "main"},
                "timestamp": {"type": "string", "example": "2024-01-01T00:00:00Z"}
            }
        },
        "response.ErrorResp": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "reason": {"type": "string"},
                "kind": {"type": "string"},
                "fields": {"type": "array", "items": {"type": "string"}}
            }
        },
        "response.StatusResp": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "success"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Repository Activity Feed API",
	Description:      "Receives GitHub webhook deliveries and serves a polled feed of repository activity.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
