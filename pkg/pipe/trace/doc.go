// Package trace adds zerolog-backed observability to pipes: a middleware
// that logs every step transition and a yield observer for the channel
// driver. The core pipe package stays free of logging concerns.
package trace
