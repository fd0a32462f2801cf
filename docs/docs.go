// Package docs registers the OpenAPI description of the ledgerly API with swag.
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
		"/ws": {
			"get": {
				"tags": [
					"realtime"
				],
				"summary": "Open the realtime event stream",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Access token",
						"name": "token",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"101": {
						"description": "Switching Protocols"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				}
			}
		},
		"/auth/callback": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Create or fetch the signed-in user",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/service.AuthResult"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				}
			}
		},
		"/auth/me": {
			"get": {
				"tags": [
					"auth"
				],
				"summary": "Current user",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/domain.User"
										}
									}
								}
							]
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				}
			}
		},
		"/auth/logout": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Sign out",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Response"
								}
							]
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				}
			}
		},
		"/categories": {
			"get": {
				"tags": [
					"categories"
				],
				"summary": "List categories grouped by type",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/domain.CategoryGroups"
										}
									}
								}
							]
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				}
			},
			"post": {
				"tags": [
					"categories"
				],
				"summary": "Create a category",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.CategoryInput"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/domain.Category"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"409": {
						"description": "Conflict or record still referenced",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				}
			}
		},
		"/categories/{id}": {
			"put": {
				"tags": [
					"categories"
				],
				"summary": "Update a category",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"description": "Record ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.CategoryInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/domain.Category"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"409": {
						"description": "Conflict or record still referenced",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				}
			},
			"delete": {
				"tags": [
					"categories"
				],
				"summary": "Delete a category",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"description": "Record ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Response"
								}
							]
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"409": {
						"description": "Conflict or record still referenced",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				}
			}
		},
		"/categories/{id}/can-delete": {
			"get": {
				"tags": [
					"categories"
				],
				"summary": "Check whether a category can be deleted",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"description": "Record ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/service.CanDeleteResponse"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				}
			}
		},
		"/transactions": {
			"get": {
				"tags": [
					"transactions"
				],
				"summary": "List transactions",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Case-insensitive description search",
						"name": "search",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Transaction type",
						"name": "type",
						"in": "query",
						"enum": [
							"income",
							"expense"
						]
					},
					{
						"type": "string",
						"description": "Category ID",
						"name": "categoryId",
						"in": "query",
						"format": "uuid"
					},
					{
						"type": "string",
						"description": "Payment method",
						"name": "paymentMethod",
						"in": "query",
						"enum": [
							"cash",
							"credit_card",
							"debit_card",
							"bank_transfer",
							"upi",
							"wallet",
							"other"
						]
					},
					{
						"type": "string",
						"description": "First date (YYYY-MM-DD)",
						"name": "dateFrom",
						"in": "query",
						"format": "date"
					},
					{
						"type": "string",
						"description": "Last date (YYYY-MM-DD)",
						"name": "dateTo",
						"in": "query",
						"format": "date"
					},
					{
						"type": "integer",
						"description": "Page number, 50 rows per page",
						"name": "page",
						"in": "query",
						"default": 1,
						"minimum": 1
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/domain.TransactionPage"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				}
			},
			"post": {
				"tags": [
					"transactions"
				],
				"summary": "Create a transaction",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.TransactionInput"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/domain.Transaction"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				}
			}
		},
		"/transactions/export": {
			"get": {
				"tags": [
					"transactions"
				],
				"summary": "Download the filtered transactions as a workbook",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Case-insensitive description search",
						"name": "search",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Transaction type",
						"name": "type",
						"in": "query",
						"enum": [
							"income",
							"expense"
						]
					},
					{
						"type": "string",
						"description": "Category ID",
						"name": "categoryId",
						"in": "query",
						"format": "uuid"
					},
					{
						"type": "string",
						"description": "Payment method",
						"name": "paymentMethod",
						"in": "query",
						"enum": [
							"cash",
							"credit_card",
							"debit_card",
							"bank_transfer",
							"upi",
							"wallet",
							"other"
						]
					},
					{
						"type": "string",
						"description": "First date (YYYY-MM-DD)",
						"name": "dateFrom",
						"in": "query",
						"format": "date"
					},
					{
						"type": "string",
						"description": "Last date (YYYY-MM-DD)",
						"name": "dateTo",
						"in": "query",
						"format": "date"
					}
				],
				"responses": {
					"200": {
						"description": "XLSX workbook",
						"schema": {
							"type": "file"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				}
			}
		},
		"/transactions/export/archive": {
			"post": {
				"tags": [
					"transactions"
				],
				"summary": "Store the filtered workbook and return a download link",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Case-insensitive description search",
						"name": "search",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Transaction type",
						"name": "type",
						"in": "query",
						"enum": [
							"income",
							"expense"
						]
					},
					{
						"type": "string",
						"description": "Category ID",
						"name": "categoryId",
						"in": "query",
						"format": "uuid"
					},
					{
						"type": "string",
						"description": "Payment method",
						"name": "paymentMethod",
						"in": "query",
						"enum": [
							"cash",
							"credit_card",
							"debit_card",
							"bank_transfer",
							"upi",
							"wallet",
							"other"
						]
					},
					{
						"type": "string",
						"description": "First date (YYYY-MM-DD)",
						"name": "dateFrom",
						"in": "query",
						"format": "date"
					},
					{
						"type": "string",
						"description": "Last date (YYYY-MM-DD)",
						"name": "dateTo",
						"in": "query",
						"format": "date"
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/service.ExportArchive"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"503": {
						"description": "Export archive is not configured",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				}
			}
		},
		"/transactions/{id}": {
			"get": {
				"tags": [
					"transactions"
				],
				"summary": "Get a transaction",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"description": "Record ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/domain.Transaction"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				}
			},
			"put": {
				"tags": [
					"transactions"
				],
				"summary": "Update a transaction",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"description": "Record ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.TransactionInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/domain.Transaction"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				}
			},
			"delete": {
				"tags": [
					"transactions"
				],
				"summary": "Delete a transaction",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"description": "Record ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Response"
								}
							]
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				}
			}
		},
		"/income-sources": {
			"get": {
				"tags": [
					"income-sources"
				],
				"summary": "List income sources of a month",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Month (1-12), defaults to the current month",
						"name": "month",
						"in": "query",
						"minimum": 1,
						"maximum": 12
					},
					{
						"type": "integer",
						"description": "Year, defaults to the current year",
						"name": "year",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"type": "array",
											"items": {
												"$ref": "#/definitions/domain.IncomeSource"
											}
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				}
			},
			"post": {
				"tags": [
					"income-sources"
				],
				"summary": "Create an income source",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.IncomeSourceInput"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/domain.IncomeSource"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				}
			}
		},
		"/income-sources/{id}": {
			"put": {
				"tags": [
					"income-sources"
				],
				"summary": "Update an income source",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"description": "Record ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.IncomeSourceInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/domain.IncomeSource"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				}
			},
			"delete": {
				"tags": [
					"income-sources"
				],
				"summary": "Delete an income source",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"description": "Record ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Response"
								}
							]
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				}
			}
		},
		"/income-sources/{id}/received": {
			"patch": {
				"tags": [
					"income-sources"
				],
				"summary": "Mark an income source received or pending",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"description": "Record ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.ToggleReceivedRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/domain.IncomeSource"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				}
			}
		},
		"/recurring": {
			"get": {
				"tags": [
					"recurring"
				],
				"summary": "List recurring expenses with due status",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/service.RecurringList"
										}
									}
								}
							]
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				}
			},
			"post": {
				"tags": [
					"recurring"
				],
				"summary": "Create a recurring expense",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.RecurringInput"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/domain.RecurringView"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				}
			}
		},
		"/recurring/monthly-total": {
			"get": {
				"tags": [
					"recurring"
				],
				"summary": "Monthly-equivalent total of active recurring expenses",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/domain.RecurringSummary"
										}
									}
								}
							]
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				}
			}
		},
		"/recurring/{id}": {
			"get": {
				"tags": [
					"recurring"
				],
				"summary": "Get a recurring expense",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"description": "Record ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/domain.RecurringView"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				}
			},
			"put": {
				"tags": [
					"recurring"
				],
				"summary": "Update a recurring expense",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"description": "Record ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.RecurringInput"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/domain.RecurringView"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				}
			},
			"delete": {
				"tags": [
					"recurring"
				],
				"summary": "Delete a recurring expense",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"description": "Record ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Response"
								}
							]
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				}
			}
		},
		"/recurring/{id}/active": {
			"patch": {
				"tags": [
					"recurring"
				],
				"summary": "Pause or resume a recurring expense",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"description": "Record ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handler.ToggleActiveRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/domain.RecurringExpense"
										}
									}
								}
							]
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				}
			}
		},
		"/dashboard/summary": {
			"get": {
				"tags": [
					"dashboard"
				],
				"summary": "Dashboard summary; anonymous callers get an empty summary",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"allOf": [
								{
									"$ref": "#/definitions/handler.Response"
								},
								{
									"type": "object",
									"properties": {
										"data": {
											"$ref": "#/definitions/domain.DashboardSummary"
										}
									}
								}
							]
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/handler.Response"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"handler.Response": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"enum": [
						"success",
						"error"
					]
				},
				"message": {
					"type": "string"
				},
				"data": {
					"description": "Payload; null on most errors"
				}
			},
			"required": [
				"status"
			]
		},
		"handler.ToggleReceivedRequest": {
			"type": "object",
			"properties": {
				"isReceived": {
					"type": "boolean"
				}
			},
			"required": [
				"isReceived"
			]
		},
		"handler.ToggleActiveRequest": {
			"type": "object",
			"properties": {
				"isActive": {
					"type": "boolean"
				}
			},
			"required": [
				"isActive"
			]
		},
		"domain.User": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"auth0Id": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"name": {
					"type": "string",
					"x-nullable": true
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				},
				"updatedAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"service.AuthResult": {
			"type": "object",
			"properties": {
				"user": {
					"$ref": "#/definitions/domain.User"
				},
				"isNewUser": {
					"type": "boolean"
				}
			}
		},
		"domain.Category": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"ownerId": {
					"type": "string",
					"format": "uuid"
				},
				"name": {
					"type": "string"
				},
				"icon": {
					"type": "string",
					"x-nullable": true
				},
				"color": {
					"type": "string",
					"example": "#f97316"
				},
				"type": {
					"type": "string",
					"enum": [
						"expense",
						"income"
					]
				},
				"isDefault": {
					"type": "boolean"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				},
				"updatedAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"domain.CategoryRef": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"name": {
					"type": "string"
				},
				"icon": {
					"type": "string",
					"x-nullable": true
				},
				"color": {
					"type": "string"
				},
				"type": {
					"type": "string",
					"enum": [
						"expense",
						"income"
					]
				}
			}
		},
		"domain.CategoryGroups": {
			"type": "object",
			"properties": {
				"expense": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Category"
					}
				},
				"income": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Category"
					}
				}
			}
		},
		"domain.CategoryInput": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string",
					"maxLength": 50
				},
				"icon": {
					"type": "string",
					"maxLength": 10
				},
				"color": {
					"type": "string",
					"pattern": "^#[0-9a-fA-F]{6}$"
				},
				"type": {
					"type": "string",
					"enum": [
						"expense",
						"income"
					]
				}
			},
			"required": [
				"name",
				"icon",
				"color",
				"type"
			]
		},
		"service.CanDeleteResponse": {
			"type": "object",
			"properties": {
				"canDelete": {
					"type": "boolean"
				},
				"transactionCount": {
					"type": "integer"
				}
			}
		},
		"domain.Transaction": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"ownerId": {
					"type": "string",
					"format": "uuid"
				},
				"categoryId": {
					"type": "string",
					"format": "uuid",
					"x-nullable": true
				},
				"recurringExpenseId": {
					"type": "string",
					"format": "uuid",
					"x-nullable": true
				},
				"type": {
					"type": "string",
					"enum": [
						"income",
						"expense"
					]
				},
				"amount": {
					"type": "string",
					"example": "42.50",
					"description": "Decimal amount"
				},
				"description": {
					"type": "string"
				},
				"date": {
					"type": "string",
					"format": "date",
					"example": "2026-10-18"
				},
				"paymentMethod": {
					"type": "string",
					"enum": [
						"cash",
						"credit_card",
						"debit_card",
						"bank_transfer",
						"upi",
						"wallet",
						"other"
					]
				},
				"note": {
					"type": "string",
					"x-nullable": true
				},
				"isDeleted": {
					"type": "boolean"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				},
				"updatedAt": {
					"type": "string",
					"format": "date-time"
				},
				"category": {
					"$ref": "#/definitions/domain.CategoryRef"
				}
			}
		},
		"domain.TransactionInput": {
			"type": "object",
			"properties": {
				"type": {
					"type": "string",
					"enum": [
						"income",
						"expense"
					]
				},
				"amount": {
					"type": "string",
					"example": "42.50",
					"description": "Decimal amount"
				},
				"description": {
					"type": "string",
					"maxLength": 200
				},
				"categoryId": {
					"type": "string",
					"format": "uuid"
				},
				"date": {
					"type": "string",
					"format": "date",
					"example": "2026-10-18"
				},
				"paymentMethod": {
					"type": "string",
					"enum": [
						"cash",
						"credit_card",
						"debit_card",
						"bank_transfer",
						"upi",
						"wallet",
						"other"
					]
				},
				"note": {
					"type": "string",
					"maxLength": 500
				}
			},
			"required": [
				"type",
				"amount",
				"description",
				"date",
				"paymentMethod"
			]
		},
		"domain.TransactionPage": {
			"type": "object",
			"properties": {
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Transaction"
					}
				},
				"total": {
					"type": "integer"
				},
				"page": {
					"type": "integer"
				},
				"pageSize": {
					"type": "integer"
				}
			}
		},
		"service.ExportArchive": {
			"type": "object",
			"properties": {
				"key": {
					"type": "string"
				},
				"url": {
					"type": "string",
					"format": "uri"
				},
				"expiresAt": {
					"type": "string",
					"format": "date-time"
				},
				"rows": {
					"type": "integer"
				}
			}
		},
		"domain.IncomeSource": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"ownerId": {
					"type": "string",
					"format": "uuid"
				},
				"name": {
					"type": "string"
				},
				"sourceType": {
					"type": "string"
				},
				"amount": {
					"type": "string",
					"example": "42.50",
					"description": "Decimal amount"
				},
				"month": {
					"type": "integer"
				},
				"year": {
					"type": "integer"
				},
				"note": {
					"type": "string",
					"x-nullable": true
				},
				"isReceived": {
					"type": "boolean"
				},
				"receivedAt": {
					"type": "string",
					"format": "date-time",
					"x-nullable": true
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				},
				"updatedAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"domain.IncomeSourceInput": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string",
					"maxLength": 100
				},
				"sourceType": {
					"type": "string",
					"enum": [
						"salary",
						"freelance",
						"business",
						"investment",
						"rental",
						"gift",
						"credit_card",
						"other"
					]
				},
				"amount": {
					"type": "string",
					"example": "42.50",
					"description": "Decimal amount"
				},
				"month": {
					"type": "integer",
					"minimum": 1,
					"maximum": 12
				},
				"year": {
					"type": "integer",
					"minimum": 2000,
					"maximum": 2100
				},
				"isReceived": {
					"type": "boolean"
				},
				"note": {
					"type": "string",
					"maxLength": 500
				}
			},
			"required": [
				"name",
				"sourceType",
				"amount",
				"month",
				"year"
			]
		},
		"domain.RecurringExpense": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"ownerId": {
					"type": "string",
					"format": "uuid"
				},
				"categoryId": {
					"type": "string",
					"format": "uuid",
					"x-nullable": true
				},
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string",
					"x-nullable": true
				},
				"amount": {
					"type": "string",
					"example": "42.50",
					"description": "Decimal amount"
				},
				"frequency": {
					"type": "string",
					"enum": [
						"daily",
						"weekly",
						"biweekly",
						"monthly",
						"quarterly",
						"yearly"
					]
				},
				"paymentMethod": {
					"type": "string",
					"enum": [
						"cash",
						"credit_card",
						"debit_card",
						"bank_transfer",
						"upi",
						"wallet",
						"other"
					]
				},
				"startDate": {
					"type": "string",
					"format": "date",
					"example": "2026-10-18"
				},
				"endDate": {
					"type": "string",
					"format": "date",
					"example": "2026-10-18",
					"x-nullable": true
				},
				"nextDueDate": {
					"type": "string",
					"format": "date",
					"example": "2026-10-18"
				},
				"isActive": {
					"type": "boolean"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				},
				"updatedAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"domain.DueStatus": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"enum": [
						"overdue",
						"today",
						"soon",
						"upcoming"
					]
				},
				"label": {
					"type": "string",
					"example": "Due in 2 days"
				},
				"daysUntil": {
					"type": "integer"
				}
			}
		},
		"domain.RecurringView": {
			"allOf": [
				{
					"$ref": "#/definitions/domain.RecurringExpense"
				},
				{
					"type": "object",
					"properties": {
						"due": {
							"$ref": "#/definitions/domain.DueStatus"
						}
					}
				}
			]
		},
		"domain.RecurringInput": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string",
					"maxLength": 200
				},
				"description": {
					"type": "string",
					"maxLength": 500
				},
				"categoryId": {
					"type": "string",
					"format": "uuid"
				},
				"amount": {
					"type": "string",
					"example": "42.50",
					"description": "Decimal amount"
				},
				"frequency": {
					"type": "string",
					"enum": [
						"daily",
						"weekly",
						"biweekly",
						"monthly",
						"quarterly",
						"yearly"
					]
				},
				"paymentMethod": {
					"type": "string",
					"enum": [
						"cash",
						"credit_card",
						"debit_card",
						"bank_transfer",
						"upi",
						"wallet",
						"other"
					]
				},
				"startDate": {
					"type": "string",
					"format": "date",
					"example": "2026-10-18"
				},
				"endDate": {
					"type": "string",
					"format": "date",
					"example": "2026-10-18"
				},
				"isActive": {
					"type": "boolean"
				}
			},
			"required": [
				"name",
				"amount",
				"frequency",
				"paymentMethod",
				"startDate"
			]
		},
		"domain.RecurringSummary": {
			"type": "object",
			"properties": {
				"monthlyTotal": {
					"type": "string",
					"example": "42.50",
					"description": "Decimal amount"
				},
				"activeCount": {
					"type": "integer"
				}
			}
		},
		"service.RecurringList": {
			"type": "object",
			"properties": {
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.RecurringView"
					}
				},
				"summary": {
					"$ref": "#/definitions/domain.RecurringSummary"
				}
			}
		},
		"domain.TrendPoint": {
			"type": "object",
			"properties": {
				"month": {
					"type": "string",
					"example": "Oct"
				},
				"year": {
					"type": "integer"
				},
				"expenses": {
					"type": "string",
					"example": "42.50",
					"description": "Decimal amount"
				},
				"income": {
					"type": "string",
					"example": "42.50",
					"description": "Decimal amount"
				}
			}
		},
		"domain.CategoryStat": {
			"type": "object",
			"properties": {
				"categoryId": {
					"type": "string",
					"format": "uuid",
					"x-nullable": true
				},
				"name": {
					"type": "string"
				},
				"icon": {
					"type": "string",
					"x-nullable": true
				},
				"color": {
					"type": "string"
				},
				"amount": {
					"type": "string",
					"example": "42.50",
					"description": "Decimal amount"
				},
				"percent": {
					"type": "string",
					"example": "42.50",
					"description": "Decimal amount"
				}
			}
		},
		"domain.DashboardSummary": {
			"type": "object",
			"properties": {
				"monthlyExpenses": {
					"type": "string",
					"example": "42.50",
					"description": "Decimal amount"
				},
				"monthlyIncomeExpected": {
					"type": "string",
					"example": "42.50",
					"description": "Decimal amount"
				},
				"monthlyIncomeReceived": {
					"type": "string",
					"example": "42.50",
					"description": "Decimal amount"
				},
				"recurringMonthlyTotal": {
					"type": "string",
					"example": "42.50",
					"description": "Decimal amount"
				},
				"activeRecurringCount": {
					"type": "integer"
				},
				"trend": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.TrendPoint"
					}
				},
				"categories": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.CategoryStat"
					}
				},
				"recentExpenses": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Transaction"
					}
				},
				"upcomingRecurring": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.RecurringView"
					}
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Auth0 access token as \"Bearer <token>\"",
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
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Ledgerly API",
	Description:      "Personal finance API: transactions, categories, income sources, recurring expenses and the dashboard summary.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
