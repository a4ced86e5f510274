// Package openapi derives base schemas from OpenAPI 3 documents. A form schema
// comes from an operation's JSON request body and a table schema from the
// item type of its 200 response. The result is what extension providers merge
// into.
package openapi
