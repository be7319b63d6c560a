// Package docs holds the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go
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
        "/generate-mom": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Writes Markdown minutes from an agenda, a transcript, the attendance roster and notes. When transcription is empty and zoomMeetingId is set, the transcript is fetched from Zoom first.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["mom"],
                "summary": "Generate Minutes of Meeting",
                "parameters": [
                    {
                        "description": "Meeting material",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/mom.GenerateRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/mom.GenerateResponse"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "404": {"description": "Zoom transcript not found", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "502": {"description": "Zoom unavailable", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "503": {"description": "Request socket timed out", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "504": {"description": "Gateway Timeout", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/zoom/recordings": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Locates the TRANSCRIPT recording file of a meeting and returns it as plain text, or as raw WebVTT with format=vtt.",
                "produces": ["application/json"],
                "tags": ["zoom"],
                "summary": "Fetch a meeting transcript from Zoom",
                "parameters": [
                    {"type": "string", "description": "Zoom meeting id or UUID", "name": "meetingId", "in": "query", "required": true},
                    {"type": "string", "description": "vtt for the raw body", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/zoom.TranscriptResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/{provider}/token": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Mints an access token with the configured credentials and reports its type, lifetime and scope. The token itself is never returned.",
                "produces": ["application/json"],
                "tags": ["identity"],
                "summary": "Check identity provider credentials",
                "parameters": [
                    {"enum": ["teams", "google"], "type": "string", "description": "teams or google", "name": "provider", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entities.ProviderToken"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "common.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {},
                "error": {"type": "string"},
                "hint": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "entities.Attendee": {
            "type": "object",
            "required": ["Attendance", "Name"],
            "properties": {
                "Attendance": {"type": "string", "example": "Present Through Video"},
                "Name": {"type": "string"}
            }
        },
        "entities.ProviderToken": {
            "type": "object",
            "properties": {
                "expires_in": {"type": "integer"},
                "provider": {"type": "string"},
                "scope": {"type": "string"},
                "token_type": {"type": "string"}
            }
        },
        "mom.GenerateRequest": {
            "type": "object",
            "properties": {
                "agenda": {"type": "object"},
                "attendanceData": {"type": "array", "items": {"$ref": "#/definitions/entities.Attendee"}},
                "minuteType": {"type": "string", "enum": ["narrativeSummary", "bulletPoints", "narrativeAndBullet"]},
                "notes": {"type": "object"},
                "transcription": {"type": "string"},
                "zoomMeetingId": {"type": "string"}
            }
        },
        "mom.GenerateResponse": {
            "type": "object",
            "properties": {
                "format": {"type": "string", "example": "markdown"},
                "minutes": {"type": "string"}
            }
        },
        "zoom.TranscriptResponse": {
            "type": "object",
            "properties": {
                "downloadUrl": {"type": "string"},
                "transcript": {"type": "string"},
                "transcriptFileId": {"type": "string"},
                "transcriptFormat": {"type": "string", "example": "text"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
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
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "MoM Generator API",
	Description:      "Generates Minutes of Meeting from transcripts, agendas and attendance rosters",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
