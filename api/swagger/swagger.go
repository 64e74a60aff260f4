package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "NGO Connect API",
        "description": "Volunteer opportunities, fund transparency and donations for NGOs.",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": ["http", "https"],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Opportunities", "description": "Volunteer opportunity board"},
        {"name": "Transparency", "description": "Fund reports and platform totals"},
        {"name": "Payments", "description": "Simulated donation checkout"},
        {"name": "Contact", "description": "Contact form"}
    ],
    "paths": {
        "/opportunities": {
            "get": {
                "tags": ["Opportunities"],
                "summary": "List volunteer opportunities",
                "parameters": [
                    {"name": "cause", "in": "query", "type": "string"},
                    {"name": "location", "in": "query", "type": "string"},
                    {"name": "timeCommitment", "in": "query", "type": "string"},
                    {"name": "workType", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/opportunities/available": {
            "get": {
                "tags": ["Opportunities"],
                "summary": "List opportunities that still accept volunteers",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/opportunities/filter-options": {
            "get": {
                "tags": ["Opportunities"],
                "summary": "Distinct filter values",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/opportunities/{id}": {
            "get": {
                "tags": ["Opportunities"],
                "summary": "Get an opportunity",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/opportunities/{id}/apply": {
            "post": {
                "tags": ["Opportunities"],
                "summary": "Apply to volunteer",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ApplyRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid application", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "412": {"description": "Fully booked", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "503": {"description": "Hand-off queue full", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/transparency/summary": {
            "get": {
                "tags": ["Transparency"],
                "summary": "Platform transparency totals",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/transparency/reports/ngo/{ngoId}": {
            "get": {
                "tags": ["Transparency"],
                "summary": "List an NGO's fund reports, newest first",
                "parameters": [
                    {"name": "ngoId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Transparency"],
                "summary": "Submit a fund report",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "ngoId", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateFundReportRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid report", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Missing or invalid token", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Wrong role or NGO", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/transparency/reports/ngo/{ngoId}/export": {
            "get": {
                "tags": ["Transparency"],
                "summary": "Download an NGO's fund reports",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "ngoId", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File", "schema": {"type": "file"}}
                }
            }
        },
        "/payments/checkout": {
            "post": {
                "tags": ["Payments"],
                "summary": "Pay a donation through the simulated gateway",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CheckoutRequest"}}
                ],
                "responses": {
                    "200": {"description": "Captured", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "402": {"description": "Declined", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/payments/cancel": {
            "post": {
                "tags": ["Payments"],
                "summary": "Record a dismissed checkout",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CancelRequest"}}
                ],
                "responses": {
                    "200": {"description": "Recorded", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/payments/verify": {
            "post": {
                "tags": ["Payments"],
                "summary": "Verify a payment signature",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/VerifyRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/contact": {
            "post": {
                "tags": ["Contact"],
                "summary": "Send a contact message",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ContactRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid message", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "ApplyRequest": {
            "type": "object",
            "properties": {
                "fullName": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "address": {"type": "string"},
                "experience": {"type": "string"},
                "motivation": {"type": "string"},
                "availability": {"type": "string"},
                "emergencyContact": {"type": "string"},
                "emergencyPhone": {"type": "string"},
                "skills": {"type": "string"},
                "additionalInfo": {"type": "string"}
            },
            "required": ["fullName", "email", "phone", "motivation", "availability"]
        },
        "CreateFundReportRequest": {
            "type": "object",
            "properties": {
                "reportDate": {"type": "string", "format": "date"},
                "totalFundsReceived": {"type": "string"},
                "totalFundsSpent": {"type": "string"},
                "breakdown": {"type": "string"}
            },
            "required": ["reportDate", "totalFundsReceived", "totalFundsSpent", "breakdown"]
        },
        "NGORef": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"}
            },
            "required": ["id"]
        },
        "DonorDetails": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "address": {"type": "string"}
            },
            "required": ["name", "email", "phone"]
        },
        "CheckoutRequest": {
            "type": "object",
            "properties": {
                "amount": {"type": "string"},
                "ngo": {"$ref": "#/definitions/NGORef"},
                "pledgeType": {"type": "string", "enum": ["one-time", "monthly"]},
                "donor": {"$ref": "#/definitions/DonorDetails"}
            },
            "required": ["amount", "ngo", "pledgeType", "donor"]
        },
        "CancelRequest": {
            "type": "object",
            "properties": {
                "orderId": {"type": "string"},
                "amount": {"type": "string"},
                "ngo": {"$ref": "#/definitions/NGORef"},
                "pledgeType": {"type": "string"},
                "donor": {"$ref": "#/definitions/DonorDetails"}
            },
            "required": ["ngo"]
        },
        "VerifyRequest": {
            "type": "object",
            "properties": {
                "orderId": {"type": "string"},
                "paymentId": {"type": "string"},
                "signature": {"type": "string"}
            },
            "required": ["orderId", "paymentId", "signature"]
        },
        "ContactRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "subject": {"type": "string"},
                "message": {"type": "string"}
            },
            "required": ["name", "email", "subject", "message"]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
