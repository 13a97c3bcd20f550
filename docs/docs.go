// Package docs holds the Swagger 2.0 document for the HTTP API in the layout
// swag uses, registered under the default instance name.
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "Service banner",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/analyze-resume": {
            "post": {
                "description": "Accepts PDF, DOCX or TXT in the multipart field \"resume\".",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["resumes"],
                "summary": "Upload and analyse a résumé",
                "parameters": [
                    {"type": "file", "description": "Résumé file", "name": "resume", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Resume"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/model.Resume"}}
                }
            }
        },
        "/analyze-text": {
            "post": {
                "description": "The result is not stored.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["resumes"],
                "summary": "Analyse pasted résumé text",
                "parameters": [
                    {"description": "Résumé text", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.analyzeTextRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Resume"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/model.Resume"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Pings the database and, when configured, object storage.",
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "tags": ["meta"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/resumes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["resumes"],
                "summary": "List analysed résumés",
                "parameters": [
                    {"type": "integer", "default": 10, "description": "Page size", "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "description": "Offset", "name": "offset", "in": "query"},
                    {"type": "string", "description": "success or error", "name": "status", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.ResumeListResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/resumes/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["resumes"],
                "summary": "Get one résumé analysis",
                "parameters": [
                    {"type": "string", "description": "Resume ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Resume"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            },
            "delete": {
                "tags": ["resumes"],
                "summary": "Delete a résumé and its stored file",
                "parameters": [
                    {"type": "string", "description": "Resume ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/resumes/{id}/download": {
            "get": {
                "produces": ["application/json"],
                "tags": ["resumes"],
                "summary": "Presigned download link for the original file",
                "parameters": [
                    {"type": "string", "description": "Resume ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.downloadResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/resumes/{id}/reanalyze": {
            "post": {
                "produces": ["application/json"],
                "tags": ["resumes"],
                "summary": "Re-run the analysis on a stored résumé",
                "parameters": [
                    {"type": "string", "description": "Resume ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Resume"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/model.Resume"}}
                }
            }
        },
        "/supported-formats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "Accepted upload formats",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        }
    },
    "definitions": {
        "handler.analyzeTextRequest": {
            "type": "object",
            "properties": {"text": {"type": "string"}}
        },
        "handler.downloadResponse": {
            "type": "object",
            "properties": {"url": {"type": "string"}}
        },
        "handler.errorEnvelope": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}}
        },
        "handler.errorPayload": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handler.errorEnvelope"},
                "request_id": {"type": "string"}
            }
        },
        "model.Resume": {
            "type": "object",
            "properties": {
                "ai_advice": {"type": "string"},
                "analysis": {"$ref": "#/definitions/resume.Record"},
                "candidate_name": {"type": "string"},
                "career_suggestions": {"type": "array", "items": {"type": "string"}},
                "content_type": {"type": "string"},
                "created_at": {"type": "string"},
                "email": {"type": "string"},
                "extraction_method": {"type": "string"},
                "filename": {"type": "string"},
                "id": {"type": "string"},
                "size": {"type": "integer"},
                "status": {"type": "string"},
                "storage_path": {"type": "string"}
            }
        },
        "resume.EducationEntry": {
            "type": "object",
            "properties": {
                "degree": {"type": "string"},
                "institution": {"type": "string"},
                "year": {"type": "string"}
            }
        },
        "resume.ExperienceEntry": {
            "type": "object",
            "properties": {
                "company": {"type": "string"},
                "title": {"type": "string"},
                "year": {"type": "string"}
            }
        },
        "resume.Record": {
            "type": "object",
            "properties": {
                "certifications": {"type": "array", "items": {"type": "string"}},
                "education": {"type": "array", "items": {"$ref": "#/definitions/resume.EducationEntry"}},
                "email": {"type": "string"},
                "error": {"type": "string"},
                "extraction_method": {"type": "string"},
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "projects": {"type": "array", "items": {"type": "string"}},
                "sections": {"type": "object", "additionalProperties": {"type": "string"}},
                "skills": {"type": "array", "items": {"type": "string"}},
                "status": {"type": "string"},
                "summary": {"type": "string"},
                "text_preview": {"type": "string"},
                "total_text_length": {"type": "integer"},
                "work_experience": {"type": "array", "items": {"$ref": "#/definitions/resume.ExperienceEntry"}},
                "work_experience_summary": {"type": "string"}
            }
        },
        "service.ResumeListResult": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/model.Resume"}},
                "limit": {"type": "integer"},
                "offset": {"type": "integer"},
                "total": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo is rendered into docTemplate on every read. Set it before serving.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Resume API",
	Description:      "Heuristic résumé parsing, career suggestions and AI guidance.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
