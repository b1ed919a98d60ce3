// Package docs registers the OpenAPI description of the understanding API.
// Regenerate with: swag init -g cmd/understand_api/main.go -o docs
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
            "name": "Apache 2.0",
            "url": "https://opensource.org/licenses/Apache-2.0"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/v1/intents": {
            "get": {
                "description": "Lists the dictionary intents in declaration order, which is also the matching priority.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "understanding"
                ],
                "summary": "List intents",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.IntentsResponse"
                        }
                    }
                }
            }
        },
        "/v1/understand": {
            "post": {
                "description": "Normalizes the question, detects the first matching intent and returns the enriched query.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "understanding"
                ],
                "summary": "Understand a legal question",
                "parameters": [
                    {
                        "description": "Question in French",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/router.UnderstandRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.UnderstandResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "dictionary.Entry": {
            "type": "object",
            "properties": {
                "articles_cibles": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "codes_cibles": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "concepts_juridiques_centrals": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "intentions_utilisateur": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "key": {
                    "type": "string"
                },
                "termes_juridiques_textes": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "router.IntentsResponse": {
            "type": "object",
            "properties": {
                "dictionary_version": {
                    "type": "string"
                },
                "intents": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dictionary.Entry"
                    }
                }
            }
        },
        "router.UnderstandRequest": {
            "type": "object",
            "properties": {
                "query": {
                    "type": "string"
                }
            }
        },
        "router.UnderstandResponse": {
            "type": "object",
            "properties": {
                "articles_cibles": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "codes_cibles": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "dictionary_version": {
                    "type": "string"
                },
                "enriched_query": {
                    "type": "string"
                },
                "intent_detected": {
                    "type": "string"
                },
                "normalized_query": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "query": {
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
	Title:            "Juris Understanding API",
	Description:      "Query understanding for French legal questions: normalization, intent detection and query enrichment.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
