// Package docs registers the LawHub swagger document with swag.
// Regenerate with `swag init -g cmd/api/main.go` after changing handler annotations.
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
        "/health": {"get": {"tags": ["System"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}},
        "/signup": {"post": {"tags": ["User"], "summary": "Create an account", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/login": {"post": {"tags": ["User"], "summary": "Log in and receive a JWT", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/ws/chat": {"get": {"tags": ["Chat"], "summary": "Chat over WebSocket", "responses": {"101": {"description": "Switching Protocols"}}}},
        "/api/status": {"get": {"tags": ["System"], "summary": "Service status and feature list", "responses": {"200": {"description": "OK"}}}},
        "/api/profile": {"get": {"security": [{"BearerAuth": []}], "tags": ["User"], "summary": "Profile of the logged-in user", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/api/scenarios": {"get": {"tags": ["Wizard"], "summary": "Scenario picker", "responses": {"200": {"description": "OK"}}}},
        "/api/wizard/sessions": {"post": {"tags": ["Wizard"], "summary": "Start a wizard session for a scenario", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}},
        "/api/wizard/sessions/{id}": {"get": {"tags": ["Wizard"], "summary": "Current question of a wizard session", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/wizard/sessions/{id}/answers": {"post": {"tags": ["Wizard"], "summary": "Answer the current question", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "unknown option"}, "409": {"description": "solution already reached"}}}},
        "/api/wizard/sessions/{id}/back": {"post": {"tags": ["Wizard"], "summary": "Undo the last answer", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/wizard/sessions/{id}/solution": {"get": {"tags": ["Wizard"], "summary": "Solution for a finished wizard session", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "questions remain"}}}},
        "/api/wizard/sessions/{id}/save": {"post": {"security": [{"BearerAuth": []}], "tags": ["Wizard"], "summary": "Save a finished wizard session to the user's history", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}, "409": {"description": "questions remain"}}}},
        "/api/history": {"get": {"security": [{"BearerAuth": []}], "tags": ["Wizard"], "summary": "Saved solutions of the logged-in user, newest first", "responses": {"200": {"description": "OK"}}}},
        "/api/laws": {"get": {"tags": ["Laws"], "summary": "Search the law library", "parameters": [{"type": "string", "name": "q", "in": "query"}, {"type": "string", "name": "country", "in": "query"}, {"type": "string", "name": "topic", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/api/laws/filters": {"get": {"tags": ["Laws"], "summary": "Country and topic picker lists", "responses": {"200": {"description": "OK"}}}},
        "/api/laws/{id}": {"get": {"tags": ["Laws"], "summary": "One law article", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/documents": {"post": {"consumes": ["multipart/form-data"], "tags": ["Documents"], "summary": "Upload a document for analysis", "parameters": [{"type": "file", "name": "file", "in": "formData", "required": true}], "responses": {"201": {"description": "Created"}, "413": {"description": "Request Entity Too Large"}, "415": {"description": "Unsupported Media Type"}}}},
        "/api/documents/{id}": {"get": {"tags": ["Documents"], "summary": "Upload and analysis state", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/documents/{id}/analysis": {"post": {"tags": ["Documents"], "summary": "Analyze the uploaded document", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "analysis already running"}}}},
        "/api/chat/conversations": {"post": {"tags": ["Chat"], "summary": "Open a chat conversation", "responses": {"201": {"description": "Created"}}}},
        "/api/chat/conversations/{id}": {"get": {"tags": ["Chat"], "summary": "Messages of a conversation", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/chat/conversations/{id}/messages": {"post": {"tags": ["Chat"], "summary": "Send a message and wait for the bot's reply", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "reply pending"}}}},
        "/api/ask": {"post": {"tags": ["Chat"], "summary": "Rule-based legal advice", "responses": {"200": {"description": "OK"}}}},
        "/api/voice/languages": {"get": {"tags": ["Voice"], "summary": "Languages the voice assistant understands", "responses": {"200": {"description": "OK"}}}},
        "/api/voice/consoles": {"post": {"tags": ["Voice"], "summary": "Open a voice console", "responses": {"201": {"description": "Created"}}}},
        "/api/voice/consoles/{id}": {"get": {"tags": ["Voice"], "summary": "Voice console state and transcripts, newest first", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/voice/consoles/{id}/listen": {"post": {"tags": ["Voice"], "summary": "Record and transcribe one question", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "already listening"}}}},
        "/api/emergency": {"get": {"tags": ["Emergency"], "summary": "Emergency contacts and active legal alerts", "responses": {"200": {"description": "OK"}}}},
        "/api/emergency/desks": {"post": {"tags": ["Emergency"], "summary": "Open an emergency location desk", "responses": {"201": {"description": "Created"}}}},
        "/api/emergency/desks/{id}/locate": {"post": {"tags": ["Emergency"], "summary": "Detect the caller's location", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "already locating"}}}},
        "/api/languages": {"get": {"tags": ["Languages"], "summary": "Supported languages with coverage tiers", "responses": {"200": {"description": "OK"}}}},
        "/api/languages/{code}/sample": {"get": {"tags": ["Languages"], "summary": "Sample legal notice in a language", "parameters": [{"type": "string", "name": "code", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "unknown language"}}}},
        "/api/training": {"post": {"tags": ["Training"], "summary": "Store a question/answer pair for the assistant", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}},
        "/api/training/stats": {"get": {"tags": ["Training"], "summary": "Counts of stored training examples", "responses": {"200": {"description": "OK"}}}}
    },
    "securityDefinitions": {
        "BearerAuth": {
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
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "LawHub API",
	Description:      "Legal assistance backend: situation wizard, law explorer, document scan, chat and emergency info.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
