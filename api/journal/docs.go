// Package journal registers the Swagger document served under /swagger/.
// Regenerate with: swag init -g internal/journal/http/router.go -o api/journal
package journal

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "AussieBroadWAN Team",
            "url": "https://github.com/aussiebroadwan/journal"
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
        "/api/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Accounts"],
                "summary": "Register",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/journalsdk.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "message, access_token, user", "schema": {"$ref": "#/definitions/journalsdk.AuthResponse"}},
                    "400": {"description": "missing email or password", "schema": {"$ref": "#/definitions/journalsdk.ErrorResponse"}},
                    "409": {"description": "email already registered", "schema": {"$ref": "#/definitions/journalsdk.ErrorResponse"}},
                    "503": {"description": "storage unavailable", "schema": {"$ref": "#/definitions/journalsdk.ErrorResponse"}}
                }
            }
        },
        "/api/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Accounts"],
                "summary": "Login",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/journalsdk.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "message, access_token, user", "schema": {"$ref": "#/definitions/journalsdk.AuthResponse"}},
                    "400": {"description": "missing email or password", "schema": {"$ref": "#/definitions/journalsdk.ErrorResponse"}},
                    "401": {"description": "invalid credentials", "schema": {"$ref": "#/definitions/journalsdk.ErrorResponse"}},
                    "503": {"description": "storage unavailable", "schema": {"$ref": "#/definitions/journalsdk.ErrorResponse"}}
                }
            }
        },
        "/api/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Accounts"],
                "summary": "Profile",
                "responses": {
                    "200": {"description": "email, name, created_at, papers_count", "schema": {"$ref": "#/definitions/journalsdk.ProfileResponse"}},
                    "401": {"description": "invalid or expired token", "schema": {"$ref": "#/definitions/journalsdk.ErrorResponse"}},
                    "404": {"description": "account no longer exists", "schema": {"$ref": "#/definitions/journalsdk.ErrorResponse"}},
                    "503": {"description": "storage unavailable", "schema": {"$ref": "#/definitions/journalsdk.ErrorResponse"}}
                }
            }
        },
        "/api/submit-paper": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Papers"],
                "summary": "Submit paper",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/journalsdk.SubmitPaperRequest"}}
                ],
                "responses": {
                    "201": {"description": "message, paper", "schema": {"$ref": "#/definitions/journalsdk.SubmitPaperResponse"}},
                    "400": {"description": "malformed body", "schema": {"$ref": "#/definitions/journalsdk.ErrorResponse"}},
                    "401": {"description": "invalid or expired token", "schema": {"$ref": "#/definitions/journalsdk.ErrorResponse"}},
                    "404": {"description": "account no longer exists", "schema": {"$ref": "#/definitions/journalsdk.ErrorResponse"}},
                    "503": {"description": "storage unavailable", "schema": {"$ref": "#/definitions/journalsdk.ErrorResponse"}}
                }
            }
        },
        "/api/my-papers": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Papers"],
                "summary": "List papers",
                "responses": {
                    "200": {"description": "papers", "schema": {"$ref": "#/definitions/journalsdk.ListPapersResponse"}},
                    "401": {"description": "invalid or expired token", "schema": {"$ref": "#/definitions/journalsdk.ErrorResponse"}},
                    "404": {"description": "account no longer exists", "schema": {"$ref": "#/definitions/journalsdk.ErrorResponse"}},
                    "503": {"description": "storage unavailable", "schema": {"$ref": "#/definitions/journalsdk.ErrorResponse"}}
                }
            }
        },
        "/api/gpt-review": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Papers"],
                "summary": "Automated review",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/journalsdk.ReviewRequest"}}
                ],
                "responses": {
                    "200": {"description": "passed, score, feedback", "schema": {"$ref": "#/definitions/journalsdk.ReviewResponse"}},
                    "400": {"description": "malformed body", "schema": {"$ref": "#/definitions/journalsdk.ErrorResponse"}},
                    "401": {"description": "invalid or expired token", "schema": {"$ref": "#/definitions/journalsdk.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health",
                "responses": {
                    "200": {"description": "status, message", "schema": {"$ref": "#/definitions/journalsdk.HealthResponse"}}
                }
            }
        },
        "/livez": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness",
                "responses": {
                    "200": {"description": "status, uptime, version", "schema": {"$ref": "#/definitions/journalsdk.HealthResponse"}}
                }
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness",
                "responses": {
                    "200": {"description": "status, uptime, version, checks", "schema": {"$ref": "#/definitions/journalsdk.HealthResponse"}},
                    "503": {"description": "store unreachable", "schema": {"$ref": "#/definitions/journalsdk.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "journalsdk.RegisterRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string", "maxLength": 200},
                "password": {"type": "string"}
            }
        },
        "journalsdk.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "journalsdk.SubmitPaperRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "authors": {"type": "array", "items": {"type": "string"}},
                "abstract": {"type": "string"}
            }
        },
        "journalsdk.ReviewRequest": {
            "type": "object",
            "properties": {
                "content": {"type": "string"}
            }
        },
        "journalsdk.UserSummary": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "journalsdk.AuthResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "access_token": {"type": "string"},
                "token_type": {"type": "string"},
                "expires_at": {"type": "string"},
                "user": {"$ref": "#/definitions/journalsdk.UserSummary"}
            }
        },
        "journalsdk.ProfileResponse": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"},
                "created_at": {"type": "string"},
                "papers_count": {"type": "integer"}
            }
        },
        "journalsdk.Paper": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "authors": {"type": "array", "items": {"type": "string"}},
                "abstract": {"type": "string"},
                "submitted_at": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "journalsdk.SubmitPaperResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "paper": {"$ref": "#/definitions/journalsdk.Paper"}
            }
        },
        "journalsdk.ListPapersResponse": {
            "type": "object",
            "properties": {
                "papers": {"type": "array", "items": {"$ref": "#/definitions/journalsdk.Paper"}}
            }
        },
        "journalsdk.ReviewResponse": {
            "type": "object",
            "properties": {
                "passed": {"type": "boolean"},
                "score": {"type": "number"},
                "feedback": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}}
            }
        },
        "journalsdk.HealthChecks": {
            "type": "object",
            "properties": {
                "store": {"type": "string"}
            }
        },
        "journalsdk.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"},
                "uptime": {"type": "string"},
                "version": {"type": "string"},
                "checks": {"$ref": "#/definitions/journalsdk.HealthChecks"}
            }
        },
        "journalsdk.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "error_description": {"type": "string"},
                "details": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT access token. Format: \"Bearer {token}\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:5555",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Journal API",
	Description:      "Account registration and paper submission for the journal.\n\nAccess tokens are HS256 JWTs valid for seven days.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
