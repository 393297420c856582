// Package http implements the REST API of the protocol catalog.
//
// All routes live under /api. Login and version are public; protocol routes
// need a valid bearer token, and user management additionally needs the
// administrator role. Every response carries an X-Trace-ID header and every
// error body has the shape {"message": "..."}.
package http
