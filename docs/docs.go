// Package docs holds the OpenAPI document built from the handler annotations.
// Regenerate it with `swag init -g cmd/api/main.go` after changing a route.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "url": "http://www.swagger.io/support",
            "email": "support@swagger.io"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/customers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "List customers",
                "parameters": [
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "size", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Create a customer",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/customers/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Search customers",
                "parameters": [{"type": "string", "name": "q", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/customers/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Get a customer",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Update a customer",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["customers"],
                "summary": "Delete a customer",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/liquidations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["liquidations"],
                "summary": "List liquidations",
                "parameters": [
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "integer", "name": "customerId", "in": "query"},
                    {"type": "string", "name": "dateField", "in": "query"},
                    {"type": "string", "name": "startDate", "in": "query"},
                    {"type": "string", "name": "endDate", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "size", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["liquidations"],
                "summary": "Create a liquidation",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/liquidations/customer/{customerId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["liquidations"],
                "summary": "List liquidations of a customer",
                "parameters": [{"type": "integer", "name": "customerId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/liquidations/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["liquidations"],
                "summary": "Get a liquidation",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["liquidations"],
                "summary": "Update a liquidation",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["liquidations"],
                "summary": "Delete a liquidation",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "405": {"description": "Method Not Allowed"}}
            }
        },
        "/liquidations/{id}/pay": {
            "put": {
                "produces": ["application/json"],
                "tags": ["liquidations"],
                "summary": "Mark a liquidation as paid",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "402": {"description": "Payment Required"}, "404": {"description": "Not Found"}}
            }
        },
        "/liquidations/{id}/penalty": {
            "get": {
                "produces": ["application/json"],
                "tags": ["liquidations"],
                "summary": "Compute the late penalty",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "dailyRate", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/liquidations/{id}/payment-reference": {
            "get": {
                "produces": ["application/json"],
                "tags": ["liquidations"],
                "summary": "Get the payment reference payload",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"type": "boolean", "name": "regenerate", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/liquidations/{id}/qrcode": {
            "get": {
                "produces": ["image/png"],
                "tags": ["liquidations"],
                "summary": "Render the payment reference as a QR code",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "name": "size", "in": "query"},
                    {"type": "string", "name": "level", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Liquidation Back-Office API",
	Description:      "Customers, tax liquidations, late penalties and payment references.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
