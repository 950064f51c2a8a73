// Package docs provides the Swagger specification served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "support@courseplan.app"
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
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "User login",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": ["auth"],
                "summary": "Refresh access token",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["auth"],
                "security": [{"BearerAuth": []}],
                "summary": "User logout",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["auth"],
                "security": [{"BearerAuth": []}],
                "summary": "Get own profile",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/courses": {
            "get": {
                "tags": ["catalog"],
                "summary": "List courses",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/courses/{code}": {
            "get": {
                "tags": ["catalog"],
                "summary": "Get course",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/courses/{code}/requirements": {
            "get": {
                "tags": ["catalog"],
                "summary": "Get course requirements",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/plans": {
            "get": {
                "tags": ["plans"],
                "security": [{"BearerAuth": []}],
                "summary": "List plans",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["plans"],
                "security": [{"BearerAuth": []}],
                "summary": "Create plan",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/plans/{id}": {
            "get": {
                "tags": ["plans"],
                "security": [{"BearerAuth": []}],
                "summary": "Get plan",
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "tags": ["plans"],
                "security": [{"BearerAuth": []}],
                "summary": "Rename plan",
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["plans"],
                "security": [{"BearerAuth": []}],
                "summary": "Delete plan",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/plans/{id}/validation": {
            "get": {
                "tags": ["plans"],
                "security": [{"BearerAuth": []}],
                "summary": "Validate plan",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/plans/{id}/placements": {
            "post": {
                "tags": ["plans"],
                "security": [{"BearerAuth": []}],
                "summary": "Place course",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/plans/{id}/placements/{code}": {
            "put": {
                "tags": ["plans"],
                "security": [{"BearerAuth": []}],
                "summary": "Move course",
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["plans"],
                "security": [{"BearerAuth": []}],
                "summary": "Remove course",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "JWT token for authorization"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "CoursePlan API",
	Description:      "API for course planning: catalog browsing, requirement resolution and semester plan validation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
