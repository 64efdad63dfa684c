// Package schemas embeds the JSON Schemas for exported documents.
package schemas

import _ "embed"

// DashboardFile is the file name of the dashboard schema
const DashboardFile = "dashboard.schema.json"

// Dashboard is the JSON Schema of an exported dashboard
//
//go:embed dashboard.schema.json
var Dashboard string
