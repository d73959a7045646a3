// Package formatter provides edit.Formatter implementations: a libphonenumber
// adapter, template masks configured per region, and a chain combining them.
package formatter
