// Package docs содержит OpenAPI-описание REST API card-service для Swagger UI
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
        "/customers": {
            "post": {
                "tags": [
                    "customers"
                ],
                "summary": "Создать клиента",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Данные клиента",
                        "name": "customer",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.CreateCustomerRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Клиент создан"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "409": {
                        "description": "Клиент с таким email уже существует"
                    }
                }
            },
            "get": {
                "tags": [
                    "customers"
                ],
                "summary": "Получить список клиентов",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Email клиента",
                        "name": "email",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                }
            }
        },
        "/customers/{id}": {
            "get": {
                "tags": [
                    "customers"
                ],
                "summary": "Получить клиента",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID клиента",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                }
            }
        },
        "/customers/{id}/cards": {
            "get": {
                "tags": [
                    "customers"
                ],
                "summary": "Получить карты клиента",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID клиента",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                }
            }
        },
        "/cards": {
            "post": {
                "tags": [
                    "cards"
                ],
                "summary": "Выпустить карту",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Параметры карты",
                        "name": "card",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.IssueCardRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Карта выпущена"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Клиент не найден"
                    }
                }
            }
        },
        "/cards/{id}": {
            "get": {
                "tags": [
                    "cards"
                ],
                "summary": "Получить карту",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID карты",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                }
            }
        },
        "/cards/{id}/status": {
            "get": {
                "tags": [
                    "cards"
                ],
                "summary": "Получить статус карты",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID карты",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                }
            }
        },
        "/cards/{id}/activate": {
            "post": {
                "tags": [
                    "cards"
                ],
                "summary": "Активировать карту",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID карты",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "409": {
                        "description": "Карта уже активна"
                    }
                }
            }
        },
        "/cards/{id}/suspend": {
            "post": {
                "tags": [
                    "cards"
                ],
                "summary": "Приостановить карту",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID карты",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                }
            }
        },
        "/cards/{id}/block": {
            "post": {
                "tags": [
                    "cards"
                ],
                "summary": "Заблокировать карту",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID карты",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                }
            }
        },
        "/cards/{id}/verify-limit": {
            "get": {
                "tags": [
                    "cards"
                ],
                "summary": "Проверить лимит карты",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID карты",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Сумма операции",
                        "name": "amount",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                }
            }
        },
        "/cards/{id}/operations": {
            "post": {
                "tags": [
                    "operations"
                ],
                "summary": "Провести операцию по карте",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID карты",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Операция",
                        "name": "operation",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.RecordOperationRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Операция записана"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "403": {
                        "description": "Карта не активна"
                    },
                    "404": {
                        "description": "Карта не найдена"
                    },
                    "422": {
                        "description": "Превышен лимит"
                    },
                    "503": {
                        "description": "Операция записана, но не поставлена в очередь детекции"
                    }
                }
            },
            "get": {
                "tags": [
                    "operations"
                ],
                "summary": "Получить операции карты",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID карты",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                }
            }
        },
        "/cards/{id}/operations/recent": {
            "get": {
                "tags": [
                    "operations"
                ],
                "summary": "Получить недавние операции карты",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID карты",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                }
            }
        },
        "/cards/{id}/operations/total": {
            "get": {
                "tags": [
                    "operations"
                ],
                "summary": "Сумма операций карты за период",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID карты",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Начало периода (RFC3339)",
                        "name": "from",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Конец периода (RFC3339)",
                        "name": "to",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                }
            }
        },
        "/cards/{id}/alerts": {
            "get": {
                "tags": [
                    "alerts"
                ],
                "summary": "Получить оповещения карты",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID карты",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/cards/{id}/detect": {
            "post": {
                "tags": [
                    "detection"
                ],
                "summary": "Запустить детекцию по карте",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID карты",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    },
                    "500": {
                        "description": "Ошибка хранилища"
                    }
                }
            }
        },
        "/operations": {
            "get": {
                "tags": [
                    "operations"
                ],
                "summary": "Найти операции",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID карты",
                        "name": "card_id",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "Тип операции",
                        "name": "type",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "Место",
                        "name": "location",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "Минимальная сумма",
                        "name": "min_amount",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "Максимальная сумма",
                        "name": "max_amount",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "Начало периода (RFC3339)",
                        "name": "from",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "Конец периода (RFC3339)",
                        "name": "to",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "integer",
                        "description": "Лимит результатов (максимум 500)",
                        "name": "limit",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    }
                }
            }
        },
        "/operations/{id}": {
            "get": {
                "tags": [
                    "operations"
                ],
                "summary": "Получить операцию",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID операции",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                }
            }
        },
        "/operations/generate": {
            "get": {
                "tags": [
                    "operations"
                ],
                "summary": "Сгенерировать случайную операцию",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID карты",
                        "name": "card_id",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/alerts": {
            "get": {
                "tags": [
                    "alerts"
                ],
                "summary": "Получить оповещения",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID карты",
                        "name": "card_id",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "Уровень: WARNING или CRITICAL",
                        "name": "level",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    }
                }
            }
        },
        "/alerts/critical": {
            "get": {
                "tags": [
                    "alerts"
                ],
                "summary": "Получить критические оповещения",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/alerts/stats": {
            "get": {
                "tags": [
                    "alerts"
                ],
                "summary": "Статистика оповещений",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/alerts/{id}": {
            "delete": {
                "tags": [
                    "alerts"
                ],
                "summary": "Удалить оповещение",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID оповещения",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found"
                    }
                }
            }
        },
        "/reports/top-cards": {
            "get": {
                "tags": [
                    "reports"
                ],
                "summary": "Топ-5 карт по числу операций",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/reports/monthly": {
            "get": {
                "tags": [
                    "reports"
                ],
                "summary": "Суммы по типам операций за месяц",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Год",
                        "name": "year",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Месяц (1-12)",
                        "name": "month",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    }
                }
            }
        },
        "/reports/status-distribution": {
            "get": {
                "tags": [
                    "reports"
                ],
                "summary": "Распределение карт по статусам",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/reports/daily": {
            "get": {
                "tags": [
                    "reports"
                ],
                "summary": "Сводка операций по дням",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Количество дней, включая сегодня",
                        "name": "days",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request"
                    }
                }
            }
        },
        "/reports/top-locations": {
            "get": {
                "tags": [
                    "reports"
                ],
                "summary": "Топ-10 мест по числу операций",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/reports/average-by-card-type": {
            "get": {
                "tags": [
                    "reports"
                ],
                "summary": "Средняя сумма операции по типу карты",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        }
    },
    "definitions": {
        "models.CreateCustomerRequest": {
            "type": "object",
            "required": [
                "email",
                "name"
            ],
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                }
            }
        },
        "models.IssueCardRequest": {
            "type": "object",
            "required": [
                "customer_id",
                "type"
            ],
            "properties": {
                "customer_id": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "DEBIT",
                        "CREDIT",
                        "PREPAID"
                    ]
                },
                "daily_limit": {
                    "type": "string"
                },
                "monthly_limit": {
                    "type": "string"
                },
                "interest_rate": {
                    "type": "string"
                },
                "initial_balance": {
                    "type": "string"
                }
            }
        },
        "models.RecordOperationRequest": {
            "type": "object",
            "required": [
                "location",
                "type"
            ],
            "properties": {
                "amount": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "PAYMENT",
                        "WITHDRAWAL",
                        "TRANSFER",
                        "ONLINE_PAYMENT",
                        "PURCHASE"
                    ]
                },
                "location": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo содержит экспортируемую информацию Swagger, чтобы клиенты могли ее изменить
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Card Fraud System API",
	Description:      "API выпуска карт, проведения операций и детекции мошенничества",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
