// Package docs holds the OpenAPI document served at /swagger/.
// Regenerate with: swag init -g cmd/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/itinerary": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns normalized events for a category (all when omitted) and the participant directory.",
                "produces": ["application/json"],
                "tags": ["itinerary"],
                "summary": "Get the trip itinerary",
                "parameters": [
                    {"type": "string", "description": "flights-transfers, accommodation, activities or participants", "name": "category", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ItineraryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/itinerary.ics": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["text/calendar"],
                "tags": ["itinerary"],
                "summary": "Export the itinerary as iCalendar",
                "parameters": [
                    {"type": "string", "description": "flights-transfers, accommodation, activities or participants", "name": "category", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "VCALENDAR document", "schema": {"type": "string"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/participants": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["itinerary"],
                "summary": "List trip participants",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ParticipantsResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/activities": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["activities"],
                "summary": "Create an activity",
                "parameters": [
                    {"description": "Activity payload", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ActivityRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ActivityResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/activities/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["activities"],
                "summary": "Get the stored row of an activity",
                "parameters": [
                    {"type": "integer", "description": "Activity ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["activities"],
                "summary": "Update an activity",
                "parameters": [
                    {"type": "integer", "description": "Activity ID", "name": "id", "in": "path", "required": true},
                    {"description": "Activity payload", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ActivityRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ActivityResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["activities"],
                "summary": "Delete an activity",
                "parameters": [
                    {"type": "integer", "description": "Activity ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/suggested-activities": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["suggestions"],
                "summary": "List suggested activities with votes",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SuggestedActivitiesResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["suggestions"],
                "summary": "Suggest an activity",
                "parameters": [
                    {"description": "Suggestion payload", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SuggestedActivityRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.SuggestedActivityItem"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/suggested-activities/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["suggestions"],
                "summary": "Edit a suggested activity",
                "parameters": [
                    {"type": "string", "description": "Suggestion ID", "name": "id", "in": "path", "required": true},
                    {"description": "Suggestion payload", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SuggestedActivityRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["suggestions"],
                "summary": "Delete a suggested activity and its votes",
                "parameters": [
                    {"type": "string", "description": "Suggestion ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/suggested-activities/{id}/vote": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Casting the same vote again removes it; casting the other vote replaces it.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["suggestions"],
                "summary": "Vote on a suggested activity",
                "parameters": [
                    {"type": "string", "description": "Suggestion ID", "name": "id", "in": "path", "required": true},
                    {"description": "Vote payload", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.VoteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.VoteResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {"produces": ["application/json"], "tags": ["health"], "summary": "Health check",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}}}
        },
        "/livez": {
            "get": {"produces": ["application/json"], "tags": ["health"], "summary": "Liveness probe",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}}}
        },
        "/readyz": {
            "get": {"produces": ["application/json"], "tags": ["health"], "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }}
        }
    },
    "definitions": {
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}, "message": {"type": "string"}}
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {"status": {"type": "string"}, "details": {}}
        },
        "itinerary.Profile": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "initials": {"type": "string"}, "photo_url": {"type": "string"}}
        },
        "dto.ItineraryResponse": {
            "type": "object",
            "properties": {
                "events": {"type": "array", "items": {"type": "object"}},
                "participants": {"type": "array", "items": {"$ref": "#/definitions/itinerary.Profile"}}
            }
        },
        "dto.ParticipantsResponse": {
            "type": "object",
            "properties": {"participants": {"type": "array", "items": {"$ref": "#/definitions/itinerary.Profile"}}}
        },
        "dto.ActivityRequest": {
            "type": "object",
            "required": ["activity_name", "start_time"],
            "properties": {
                "activity_name": {"type": "string", "maxLength": 200},
                "location": {"type": "string"},
                "city": {"type": "string"},
                "start_time": {"type": "string", "example": "2025-06-21T09:30"},
                "end_time": {"type": "string", "example": "2025-06-21T12:00"},
                "participants": {"type": "array", "items": {"type": "string"}},
                "additional_details": {"type": "string"},
                "booking_reference": {"type": "string"},
                "activity_photo_url": {"type": "string"}
            }
        },
        "dto.ActivityResponse": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "message": {"type": "string"}}
        },
        "dto.SuggestedActivityRequest": {
            "type": "object",
            "required": ["activity_name"],
            "properties": {
                "activity_name": {"type": "string", "maxLength": 200},
                "location": {"type": "string"},
                "suggested_date": {"type": "string"},
                "duration": {"type": "string"},
                "cost": {"type": "string"},
                "image_url": {"type": "string"}
            }
        },
        "itinerary.Voter": {
            "type": "object",
            "properties": {"initials": {"type": "string"}, "name": {"type": "string"}}
        },
        "itinerary.VoteTally": {
            "type": "object",
            "properties": {
                "up": {"type": "array", "items": {"$ref": "#/definitions/itinerary.Voter"}},
                "down": {"type": "array", "items": {"$ref": "#/definitions/itinerary.Voter"}}
            }
        },
        "dto.SuggestedActivityItem": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "activity_name": {"type": "string"},
                "location": {"type": "string"},
                "suggested_date": {"type": "string"},
                "duration": {"type": "string"},
                "cost": {"type": "string"},
                "image_url": {"type": "string"},
                "created_at": {"type": "string"},
                "votes": {"$ref": "#/definitions/itinerary.VoteTally"},
                "up_count": {"type": "integer"},
                "down_count": {"type": "integer"}
            }
        },
        "dto.SuggestedActivitiesResponse": {
            "type": "object",
            "properties": {"suggested_activities": {"type": "array", "items": {"$ref": "#/definitions/dto.SuggestedActivityItem"}}}
        },
        "dto.VoteRequest": {
            "type": "object",
            "required": ["participant_initials", "vote_type"],
            "properties": {
                "participant_initials": {"type": "string"},
                "vote_type": {"type": "string", "enum": ["up", "down"]}
            }
        },
        "dto.VoteResponse": {
            "type": "object",
            "properties": {
                "result": {"type": "string", "enum": ["inserted", "replaced", "removed"]},
                "vote_type": {"type": "string"},
                "votes": {"$ref": "#/definitions/itinerary.VoteTally"}
            }
        }
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
	Schemes:          []string{"http", "https"},
	Title:            "Itinerary Backend API",
	Description:      "Normalized trip itinerary, activity management and suggestion voting",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
