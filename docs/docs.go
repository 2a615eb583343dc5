// Package docs holds the OpenAPI document served at /swagger/*.
// The template is maintained by hand in swag's registration format; keep it
// in step with the @Router annotations on the handlers.
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
        "/jwt": {"post": {"tags": ["auth"], "summary": "Issue an access token", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/auth.Identity"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}}},
        "/users": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "List users", "parameters": [{"type": "string", "name": "search", "in": "query"}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.User"}}}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}},
            "post": {"tags": ["users"], "summary": "Register a user on first sign-in", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/service.CreateUserInput"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.InsertResult"}}, "400": {"description": "Bad Request"}}}
        },
        "/users/admin/{id}": {"patch": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Grant the admin role", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.UpdateResult"}}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}}}},
        "/users/admin/{email}": {"get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Check whether the caller is an admin", "parameters": [{"type": "string", "name": "email", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}},
        "/user/badge/{email}": {"get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Get the caller's badge", "parameters": [{"type": "string", "name": "email", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.BadgeView"}}, "403": {"description": "Forbidden"}}}},
        "/announcement": {"post": {"security": [{"BearerAuth": []}], "tags": ["announcements"], "summary": "Publish an announcement", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/service.CreateAnnouncementInput"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.InsertResult"}}}}},
        "/getAnnouncements": {"get": {"tags": ["announcements"], "summary": "List announcements", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Announcement"}}}}}},
        "/tags": {
            "get": {"tags": ["tags"], "summary": "List tags", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Tag"}}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["tags"], "summary": "Create a tag", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/service.CreateTagInput"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.InsertResult"}}}}
        },
        "/admin-stats": {"get": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Collection sizes", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Stats"}}}}},
        "/newPost": {"post": {"tags": ["posts"], "summary": "Create a post", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/service.CreatePostInput"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.InsertResult"}}, "400": {"description": "Bad Request"}}}},
        "/post": {"get": {"tags": ["posts"], "summary": "List posts", "parameters": [{"type": "integer", "name": "page", "in": "query"}, {"type": "integer", "name": "size", "in": "query"}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Post"}}}, "400": {"description": "Bad Request"}}}},
        "/postCount": {"get": {"tags": ["posts"], "summary": "Count posts", "responses": {"200": {"description": "OK"}}}},
        "/post/{id}": {
            "get": {"tags": ["posts"], "summary": "Get a post", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Post"}}, "400": {"description": "Bad Request"}}},
            "patch": {"tags": ["posts"], "summary": "Vote on a post", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/service.VoteInput"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.UpdateResult"}}, "400": {"description": "Bad Request"}}}
        },
        "/myPost/{email}": {"get": {"tags": ["posts"], "summary": "List posts by author", "parameters": [{"type": "string", "name": "email", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Post"}}}}}},
        "/deletePost/{id}": {"delete": {"tags": ["posts"], "summary": "Delete a post", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.DeleteResult"}}, "400": {"description": "Bad Request"}}}},
        "/comments": {
            "get": {"tags": ["comments"], "summary": "List comments", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Comment"}}}}},
            "post": {"tags": ["comments"], "summary": "Comment on a post", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/service.CreateCommentInput"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.InsertResult"}}, "400": {"description": "Bad Request"}}}
        },
        "/comments/{title}": {"get": {"tags": ["comments"], "summary": "List comments by post title", "parameters": [{"type": "string", "name": "title", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Comment"}}}}}},
        "/getComments/{postId}": {"get": {"tags": ["comments"], "summary": "List comments on a post", "parameters": [{"type": "string", "name": "postId", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Comment"}}}, "400": {"description": "Bad Request"}}}},
        "/create-payment-intent": {"post": {"tags": ["payments"], "summary": "Create a card payment intent", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/service.PaymentIntentInput"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/service.ClientSecret"}}, "400": {"description": "Bad Request"}, "502": {"description": "Bad Gateway"}, "503": {"description": "Service Unavailable"}}}},
        "/payment-success": {"post": {"security": [{"BearerAuth": []}], "tags": ["payments"], "summary": "Award the Gold badge after payment", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/service.PaymentSuccessInput"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.UpdateResult"}}, "403": {"description": "Forbidden"}}}}
    },
    "definitions": {
        "auth.Identity": {"type": "object", "properties": {"email": {"type": "string"}, "name": {"type": "string"}}},
        "models.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}, "code": {"type": "string"}, "details": {}}},
        "models.InsertResult": {"type": "object", "properties": {"acknowledged": {"type": "boolean"}, "insertedId": {"type": "string"}}},
        "models.UpdateResult": {"type": "object", "properties": {"acknowledged": {"type": "boolean"}, "matchedCount": {"type": "integer"}, "modifiedCount": {"type": "integer"}, "upsertedCount": {"type": "integer"}, "upsertedId": {"type": "string"}}},
        "models.DeleteResult": {"type": "object", "properties": {"acknowledged": {"type": "boolean"}, "deletedCount": {"type": "integer"}}},
        "models.User": {"type": "object", "properties": {"_id": {"type": "string"}, "email": {"type": "string"}, "name": {"type": "string"}, "photo": {"type": "string"}, "role": {"type": "string"}, "badge": {"type": "string"}, "createdAt": {"type": "string"}}},
        "models.BadgeView": {"type": "object", "properties": {"badge": {"type": "string"}}},
        "models.Stats": {"type": "object", "properties": {"users": {"type": "integer"}, "posts": {"type": "integer"}, "comments": {"type": "integer"}}},
        "models.Post": {"type": "object", "properties": {"_id": {"type": "string"}, "authorName": {"type": "string"}, "authorEmail": {"type": "string"}, "authorImage": {"type": "string"}, "title": {"type": "string"}, "description": {"type": "string"}, "tags": {"type": "array", "items": {"type": "string"}}, "upVote": {"type": "integer"}, "downVote": {"type": "integer"}, "createdAt": {"type": "string"}}},
        "models.Comment": {"type": "object", "properties": {"_id": {"type": "string"}, "postId": {"type": "string"}, "title": {"type": "string"}, "body": {"type": "string"}, "authorEmail": {"type": "string"}, "createdAt": {"type": "string"}}},
        "models.Tag": {"type": "object", "properties": {"_id": {"type": "string"}, "name": {"type": "string"}}},
        "models.Announcement": {"type": "object", "properties": {"_id": {"type": "string"}, "authorName": {"type": "string"}, "authorImage": {"type": "string"}, "title": {"type": "string"}, "content": {"type": "string"}, "createdAt": {"type": "string"}}},
        "service.CreateUserInput": {"type": "object", "required": ["email", "name"], "properties": {"email": {"type": "string"}, "name": {"type": "string"}, "photo": {"type": "string"}}},
        "service.CreatePostInput": {"type": "object", "required": ["authorName", "authorEmail", "title", "description"], "properties": {"authorName": {"type": "string"}, "authorEmail": {"type": "string"}, "authorImage": {"type": "string"}, "title": {"type": "string"}, "description": {"type": "string"}, "tags": {"type": "array", "items": {"type": "string"}}}},
        "service.VoteInput": {"type": "object", "required": ["type"], "properties": {"type": {"type": "string", "enum": ["upVote", "downVote"]}}},
        "service.CreateCommentInput": {"type": "object", "required": ["postId", "title", "body", "authorEmail"], "properties": {"postId": {"type": "string"}, "title": {"type": "string"}, "body": {"type": "string"}, "authorEmail": {"type": "string"}}},
        "service.CreateTagInput": {"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}},
        "service.CreateAnnouncementInput": {"type": "object", "required": ["content"], "properties": {"authorName": {"type": "string"}, "authorImage": {"type": "string"}, "title": {"type": "string"}, "content": {"type": "string"}}},
        "service.PaymentIntentInput": {"type": "object", "properties": {"price": {"type": "number"}}},
        "service.PaymentSuccessInput": {"type": "object", "required": ["email"], "properties": {"email": {"type": "string"}}},
        "service.ClientSecret": {"type": "object", "properties": {"clientSecret": {"type": "string"}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"description": "Type \"Bearer\" followed by a space and JWT token.", "type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "SocialPod API",
	Description:      "Social posting backend with votes, comments, tags, announcements and payments",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
