// Package docs содержит описание API для Swagger UI на /docs/*.
// Пути соответствуют аннотациям обработчиков в пакете api.
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
            "get": {"tags": ["welcome"], "summary": "Welcome page", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/about": {
            "get": {"tags": ["welcome"], "summary": "About page", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/users/sign_up": {
            "post": {
                "tags": ["users"], "summary": "Register a user",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/api.signUpRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.User"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/users/sign_in": {
            "post": {
                "tags": ["users"], "summary": "Sign in and get a JWT",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/api.signInRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.tokenResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/users": {
            "get": {"tags": ["users"], "summary": "List users", "produces": ["application/json"], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.User"}}}}}
        },
        "/users/{id}": {
            "get": {
                "tags": ["users"], "summary": "Show a user",
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.User"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}
            },
            "patch": {
                "security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Update own account",
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/api.updateUserRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.User"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Delete own account",
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"204": {"description": "No Content"}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}
            }
        },
        "/topics": {
            "get": {"tags": ["topics"], "summary": "List topics", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Topic"}}}}},
            "post": {
                "security": [{"BearerAuth": []}], "tags": ["topics"], "summary": "Create a topic",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/api.topicRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Topic"}}, "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}
            }
        },
        "/topics/{id}": {
            "get": {
                "tags": ["topics"], "summary": "Show a topic with its posts",
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Topic"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}
            },
            "patch": {
                "security": [{"BearerAuth": []}], "tags": ["topics"], "summary": "Update a topic",
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/api.topicRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Topic"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}], "tags": ["topics"], "summary": "Delete a topic and its posts",
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"204": {"description": "No Content"}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}
            }
        },
        "/topics/{topic_id}/posts": {
            "post": {
                "security": [{"BearerAuth": []}], "tags": ["posts"], "summary": "Create a post in a topic",
                "parameters": [{"in": "path", "name": "topic_id", "type": "string", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/api.postRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Post"}}, "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}
            }
        },
        "/topics/{topic_id}/posts/{post_id}": {
            "get": {
                "tags": ["posts"], "summary": "Show a post with its score",
                "parameters": [{"in": "path", "name": "topic_id", "type": "string", "required": true}, {"in": "path", "name": "post_id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Post"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}
            },
            "patch": {
                "security": [{"BearerAuth": []}], "tags": ["posts"], "summary": "Update a post",
                "parameters": [{"in": "path", "name": "topic_id", "type": "string", "required": true}, {"in": "path", "name": "post_id", "type": "string", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/api.postRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Post"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}], "tags": ["posts"], "summary": "Delete a post with its votes, comments and favorites",
                "parameters": [{"in": "path", "name": "topic_id", "type": "string", "required": true}, {"in": "path", "name": "post_id", "type": "string", "required": true}],
                "responses": {"204": {"description": "No Content"}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}
            }
        },
        "/topics/{topic_id}/posts/{post_id}/score": {
            "get": {
                "tags": ["votes"], "summary": "Score of a post",
                "parameters": [{"in": "path", "name": "topic_id", "type": "string", "required": true}, {"in": "path", "name": "post_id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Score"}}}
            }
        },
        "/topics/{topic_id}/posts/{post_id}/score/stream": {
            "get": {
                "tags": ["votes"], "summary": "Stream score updates of a post (server-sent events)", "produces": ["text/event-stream"],
                "parameters": [{"in": "path", "name": "topic_id", "type": "string", "required": true}, {"in": "path", "name": "post_id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/topics/{topic_id}/posts/{post_id}/votes": {
            "post": {
                "security": [{"BearerAuth": []}], "tags": ["votes"], "summary": "Cast a vote (1 or -1)",
                "parameters": [{"in": "path", "name": "topic_id", "type": "string", "required": true}, {"in": "path", "name": "post_id", "type": "string", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/api.voteRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/api.voteResponse"}}, "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}
            }
        },
        "/topics/{topic_id}/posts/{post_id}/up-vote": {
            "post": {
                "security": [{"BearerAuth": []}], "tags": ["votes"], "summary": "Up-vote a post",
                "parameters": [{"in": "path", "name": "topic_id", "type": "string", "required": true}, {"in": "path", "name": "post_id", "type": "string", "required": true}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/api.voteResponse"}}}
            }
        },
        "/topics/{topic_id}/posts/{post_id}/down-vote": {
            "post": {
                "security": [{"BearerAuth": []}], "tags": ["votes"], "summary": "Down-vote a post",
                "parameters": [{"in": "path", "name": "topic_id", "type": "string", "required": true}, {"in": "path", "name": "post_id", "type": "string", "required": true}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/api.voteResponse"}}}
            }
        },
        "/topics/{topic_id}/posts/{post_id}/comments": {
            "get": {
                "tags": ["comments"], "summary": "List comments of a post",
                "parameters": [{"in": "path", "name": "topic_id", "type": "string", "required": true}, {"in": "path", "name": "post_id", "type": "string", "required": true}, {"in": "query", "name": "limit", "type": "integer"}, {"in": "query", "name": "offset", "type": "integer"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.CommentConnection"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}], "tags": ["comments"], "summary": "Comment a post",
                "parameters": [{"in": "path", "name": "topic_id", "type": "string", "required": true}, {"in": "path", "name": "post_id", "type": "string", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/api.commentRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Comment"}}}
            }
        },
        "/topics/{topic_id}/posts/{post_id}/favorite": {
            "post": {
                "security": [{"BearerAuth": []}], "tags": ["favorites"], "summary": "Favorite a post",
                "parameters": [{"in": "path", "name": "topic_id", "type": "string", "required": true}, {"in": "path", "name": "post_id", "type": "string", "required": true}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Favorite"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}], "tags": ["favorites"], "summary": "Unfavorite a post",
                "parameters": [{"in": "path", "name": "topic_id", "type": "string", "required": true}, {"in": "path", "name": "post_id", "type": "string", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}
            }
        }
    },
    "definitions": {
        "api.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string", "example": "post 42: not found"}, "fields": {"type": "object", "additionalProperties": {"type": "string"}}}},
        "api.signUpRequest": {"type": "object", "properties": {"username": {"type": "string", "example": "alice"}, "email": {"type": "string", "example": "alice@example.com"}, "password": {"type": "string", "example": "secret123"}}},
        "api.signInRequest": {"type": "object", "properties": {"username": {"type": "string", "example": "alice"}, "password": {"type": "string", "example": "secret123"}}},
        "api.tokenResponse": {"type": "object", "properties": {"token": {"type": "string"}}},
        "api.updateUserRequest": {"type": "object", "properties": {"username": {"type": "string"}, "email": {"type": "string"}}},
        "api.topicRequest": {"type": "object", "properties": {"name": {"type": "string", "example": "Golang"}, "description": {"type": "string", "example": "Everything about Go"}}},
        "api.postRequest": {"type": "object", "properties": {"title": {"type": "string", "example": "Hello world"}, "body": {"type": "string", "example": "A body that is at least twenty characters long"}}},
        "api.voteRequest": {"type": "object", "properties": {"value": {"type": "integer", "example": 1}}},
        "api.voteResponse": {"type": "object", "properties": {"vote": {"$ref": "#/definitions/model.Vote"}, "score": {"$ref": "#/definitions/model.Score"}}},
        "api.commentRequest": {"type": "object", "properties": {"body": {"type": "string", "example": "Great post!"}}},
        "model.User": {"type": "object", "properties": {"id": {"type": "string"}, "username": {"type": "string"}, "email": {"type": "string"}}},
        "model.Topic": {"type": "object", "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "description": {"type": "string"}, "authorId": {"type": "string"}, "posts": {"type": "array", "items": {"$ref": "#/definitions/model.Post"}}}},
        "model.Post": {"type": "object", "properties": {"id": {"type": "string"}, "topicId": {"type": "string"}, "authorId": {"type": "string"}, "title": {"type": "string"}, "body": {"type": "string"}, "createdAt": {"type": "string"}, "score": {"$ref": "#/definitions/model.Score"}, "favorites": {"type": "integer"}}},
        "model.Vote": {"type": "object", "properties": {"id": {"type": "string"}, "postId": {"type": "string"}, "userId": {"type": "string"}, "value": {"type": "integer"}, "createdAt": {"type": "string"}}},
        "model.Score": {"type": "object", "properties": {"postId": {"type": "string"}, "upVotes": {"type": "integer"}, "downVotes": {"type": "integer"}, "points": {"type": "integer"}}},
        "model.Comment": {"type": "object", "properties": {"id": {"type": "string"}, "postId": {"type": "string"}, "authorId": {"type": "string"}, "body": {"type": "string"}, "createdAt": {"type": "string"}}},
        "model.CommentConnection": {"type": "object", "properties": {"items": {"type": "array", "items": {"$ref": "#/definitions/model.Comment"}}, "hasMore": {"type": "boolean"}, "nextOffset": {"type": "integer"}}},
        "model.Favorite": {"type": "object", "properties": {"id": {"type": "string"}, "postId": {"type": "string"}, "userId": {"type": "string"}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Bloccit API",
	Description:      "Topics, posts, comments, favorites and a vote ledger.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
