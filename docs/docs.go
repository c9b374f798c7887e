// Package docs registers the OpenAPI description served under /swagger/.
// Keep it in step with the @Router annotations in internal/handler.
package docs

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
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "in": "header", "name": "X-API-Key"}
    },
    "security": [{"ApiKeyAuth": []}],
    "paths": {
        "/healthz": {
            "get": {"tags": ["health"], "summary": "Liveness check", "security": [], "responses": {"200": {"description": "OK"}}}
        },
        "/readyz": {
            "get": {"tags": ["health"], "summary": "Readiness check", "security": [],
                "responses": {"200": {"description": "Database reachable and catalog loaded"}, "503": {"description": "Database unavailable"}}}
        },
        "/version": {
            "get": {"tags": ["health"], "summary": "Version", "security": [], "responses": {"200": {"description": "Build information"}}}
        },
        "/api/v1/plans/generate": {
            "post": {"tags": ["plans"], "summary": "Generate plan",
                "description": "Resolves the production tree for an item at a target rate per minute",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/GeneratePlanRequest"}}],
                "responses": {"200": {"description": "Plan, overrides and summary"}, "400": {"description": "Unknown item, recipe or invalid amount"}}}
        },
        "/api/v1/plans/swap": {
            "post": {"tags": ["plans"], "summary": "Swap recipe",
                "description": "Replaces the recipe of the node at path; siblings and unrelated branches are untouched",
                "responses": {"200": {"description": "Plan, overrides and summary"}, "400": {"description": "Invalid path or recipe choice"}}}
        },
        "/api/v1/plans/rescale": {
            "post": {"tags": ["plans"], "summary": "Rescale plan", "responses": {"200": {"description": "Scaled plan and summary"}, "400": {"description": "Invalid amount or plan"}}}
        },
        "/api/v1/plans/summary": {
            "post": {"tags": ["plans"], "summary": "Summarize plan", "responses": {"200": {"description": "Totals, raw resources, shared products and buildings"}}}
        },
        "/api/v1/plans": {
            "post": {"tags": ["saved-plans"], "summary": "Save plan", "responses": {"201": {"description": "Saved plan metadata"}, "400": {"description": "Invalid plan"}}}
        },
        "/api/v1/plans/most-viewed": {
            "get": {"tags": ["saved-plans"], "summary": "Most viewed plans",
                "parameters": [{"in": "query", "name": "limit", "type": "integer"}],
                "responses": {"200": {"description": "Public plans ordered by views"}}}
        },
        "/api/v1/plans/{id}": {
            "get": {"tags": ["saved-plans"], "summary": "Get saved plan",
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "Metadata and plan tree"}, "404": {"description": "Plan not found"}}},
            "delete": {"tags": ["saved-plans"], "summary": "Delete saved plan",
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"204": {"description": "Deleted"}, "404": {"description": "Plan not found"}}}
        },
        "/api/v1/products": {
            "get": {"tags": ["products"], "summary": "List products",
                "parameters": [{"in": "query", "name": "q", "type": "string"}, {"in": "query", "name": "limit", "type": "integer"}],
                "responses": {"200": {"description": "Producible item names"}}}
        },
        "/api/v1/products/catalog": {
            "get": {"tags": ["products"], "summary": "Product catalog", "responses": {"200": {"description": "Default and alternate recipes per item"}}}
        },
        "/api/v1/recipes/{name}": {
            "get": {"tags": ["products"], "summary": "Get recipe",
                "parameters": [{"in": "path", "name": "name", "type": "string", "required": true}],
                "responses": {"200": {"description": "Recipe definition"}, "404": {"description": "Unknown recipe"}}}
        }
    },
    "definitions": {
        "GeneratePlanRequest": {
            "type": "object",
            "required": ["item", "amount"],
            "properties": {
                "item": {"type": "string"},
                "amount": {"type": "number"},
                "overrides": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        }
    }
}`

// SwaggerInfo holds the exported OpenAPI metadata
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Factory Planner API",
	Description:      "Production tree planning for factory recipes: resolve, swap, rescale and save plans.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
