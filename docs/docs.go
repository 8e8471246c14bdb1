// Package docs registers the swagger document served under /swagger.
// Regenerate with: swag init -g cmd/server/main.go
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
        "/auth/login": {"post": {"tags": ["Auth"], "summary": "User login", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/auth/register": {"post": {"security": [{"BearerAuth": []}], "tags": ["Auth"], "summary": "Register user", "responses": {"201": {"description": "Created"}}}},
        "/auth/register-first": {"post": {"tags": ["Auth"], "summary": "Register first admin", "responses": {"201": {"description": "Created"}, "403": {"description": "Forbidden"}}}},
        "/auth/me": {"get": {"security": [{"BearerAuth": []}], "tags": ["Auth"], "summary": "Current user", "responses": {"200": {"description": "OK"}}}},
        "/auth/users": {"get": {"security": [{"BearerAuth": []}], "tags": ["Auth"], "summary": "List users", "responses": {"200": {"description": "OK"}}}},
        "/auth/users/{id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["Auth"], "summary": "Update user", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Auth"], "summary": "Delete user", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/customers": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Customer"], "summary": "List customers", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Customer"], "summary": "Create customer", "responses": {"201": {"description": "Created"}}}
        },
        "/customers/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Customer"], "summary": "Get customer", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["Customer"], "summary": "Update customer", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Customer"], "summary": "Delete customer", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/products": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Product"], "summary": "List products", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Product"], "summary": "Create product", "responses": {"201": {"description": "Created"}}}
        },
        "/products/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Product"], "summary": "Get product", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["Product"], "summary": "Update product", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Product"], "summary": "Delete product", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/orders": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Order"], "summary": "List orders", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Order"], "summary": "Create order", "responses": {"201": {"description": "Created"}}}
        },
        "/orders/reports/weekly": {"get": {"security": [{"BearerAuth": []}], "tags": ["Order"], "summary": "Weekly sales report", "responses": {"200": {"description": "OK"}}}},
        "/orders/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Order"], "summary": "Get order", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Order"], "summary": "Delete order", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/orders/{id}/items": {"post": {"security": [{"BearerAuth": []}], "tags": ["Order"], "summary": "Add order item", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}}}},
        "/orders/{id}/status": {"patch": {"security": [{"BearerAuth": []}], "tags": ["Order"], "summary": "Update order status", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/orders/{id}/payment": {"patch": {"security": [{"BearerAuth": []}], "tags": ["Order"], "summary": "Update order payment", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/reminders": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Reminder"], "summary": "List reminders", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Reminder"], "summary": "Create reminder", "responses": {"201": {"description": "Created"}}}
        },
        "/reminders/pending": {"get": {"security": [{"BearerAuth": []}], "tags": ["Reminder"], "summary": "List pending reminders", "responses": {"200": {"description": "OK"}}}},
        "/reminders/{id}": {"delete": {"security": [{"BearerAuth": []}], "tags": ["Reminder"], "summary": "Delete reminder", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/reminders/{id}/status": {"patch": {"security": [{"BearerAuth": []}], "tags": ["Reminder"], "summary": "Update reminder status", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/test": {"get": {"tags": ["Health"], "summary": "API test", "responses": {"200": {"description": "OK"}}}},
        "/ping": {"get": {"tags": ["Health"], "summary": "Ping", "responses": {"200": {"description": "OK"}}}},
        "/health": {"get": {"tags": ["Health"], "summary": "Service health", "responses": {"200": {"description": "OK"}}}}
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Enter the token with the ` + "`" + `Bearer ` + "`" + ` prefix",
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
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "My Store CRM API",
	Description:      "Customers, products, orders and reminders kept in a Google spreadsheet",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
