// Package middleware holds the HTTP middleware of the local API.
package middleware
