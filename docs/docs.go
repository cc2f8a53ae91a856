// Package docs registers swagger spec of customer relay API for echo-swagger.
// It is maintained by hand in the layout swag init produces, keep it in sync with
// the annotations in main.go and internal/handlers.
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
        "/customer": {
            "post": {
                "description": "Forwards customer to the downstream collector and reports whether collector accepted it",
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "customers"
                ],
                "summary": "Relay customer",
                "parameters": [
                    {
                        "description": "Customer to relay",
                        "name": "customer",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/model.Customer"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Collector accepted customer"
                    },
                    "400": {
                        "description": "Collector rejected customer or payload is invalid"
                    },
                    "415": {
                        "description": "Content type is not supported"
                    },
                    "502": {
                        "description": "Collector is unreachable"
                    }
                }
            }
        }
    },
    "definitions": {
        "model.Customer": {
            "type": "object",
            "required": [
                "name",
                "surname"
            ],
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "surname": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Customer relay API",
	Description:      "Relays customers to the downstream collector",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
