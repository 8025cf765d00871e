// Package docs registers the Swagger 2.0 description of the API served at
// /swagger/. It is maintained by hand alongside the handler annotations.
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
                "tags": ["utilities"],
                "summary": "API directory",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.indexResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.healthResponse"}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.readinessResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.readinessResponse"}}
                }
            }
        },
        "/posts": {
            "get": {
                "description": "author is null when the referenced user has been deleted.",
                "produces": ["application/json"],
                "tags": ["posts"],
                "summary": "List posts, newest first, with their author expanded",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/Envelope"},
                                {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/domain.PostView"}}}}
                            ]
                        }
                    },
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["posts"],
                "summary": "Create a post",
                "parameters": [
                    {"description": "Post", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createPostRequest"}}
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/Envelope"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/domain.PostView"}}}
                            ]
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/seed": {
            "post": {
                "description": "Destructive. Only registered when seeding is enabled.",
                "produces": ["application/json"],
                "tags": ["utilities"],
                "summary": "Replace all users and posts with the sample data set",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/Envelope"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/ports.SeedResult"}}}
                            ]
                        }
                    },
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users, newest first",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/Envelope"},
                                {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/domain.User"}}}}
                            ]
                        }
                    },
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create a user",
                "parameters": [
                    {"description": "User", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createUserRequest"}}
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/Envelope"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/domain.User"}}}
                            ]
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get a user by id",
                "parameters": [
                    {"type": "string", "description": "User id (24-char hex)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/Envelope"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/domain.User"}}}
                            ]
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update a user",
                "parameters": [
                    {"type": "string", "description": "User id (24-char hex)", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateUserRequest"}}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/Envelope"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/domain.User"}}}
                            ]
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Delete a user",
                "parameters": [
                    {"type": "string", "description": "User id (24-char hex)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/Envelope"}}
                }
            }
        }
    },
    "definitions": {
        "Envelope": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "data": {},
                "error": {"type": "string"},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "domain.AuthorSummary": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "domain.PostView": {
            "type": "object",
            "properties": {
                "author": {"$ref": "#/definitions/domain.AuthorSummary"},
                "content": {"type": "string"},
                "createdAt": {"type": "string"},
                "id": {"type": "string"},
                "title": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "age": {"type": "number"},
                "createdAt": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "handler.createPostRequest": {
            "type": "object",
            "required": ["author", "content", "title"],
            "properties": {
                "author": {"description": "Author is the hex id of an existing user.", "type": "string", "example": "64b7f0c2a1b2c3d4e5f60718"},
                "content": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "handler.createUserRequest": {
            "type": "object",
            "required": ["email", "name"],
            "properties": {
                "age": {"type": "number", "minimum": 0},
                "email": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "handler.dependencyStatus": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "handler.healthResponse": {
            "type": "object",
            "properties": {
                "database": {"type": "string"},
                "environment": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "handler.indexResponse": {
            "type": "object",
            "properties": {
                "endpoints": {"type": "object", "additionalProperties": {}},
                "message": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "handler.readinessResponse": {
            "type": "object",
            "properties": {
                "dependencies": {"type": "object", "additionalProperties": {"$ref": "#/definitions/handler.dependencyStatus"}},
                "status": {"type": "string"}
            }
        },
        "handler.updateUserRequest": {
            "type": "object",
            "properties": {
                "age": {"type": "number", "minimum": 0},
                "email": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "ports.SeedResult": {
            "type": "object",
            "properties": {
                "posts": {"type": "integer"},
                "users": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "MERN Stack API",
	Description:      "CRUD API for users and posts backed by MongoDB.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
