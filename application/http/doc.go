// Package http implements the client half of Hypertext Transfer Protocol
// (HTTP/1.x) needed by a one-shot GET: encoding the request and
// classifying whatever bytes come back.
//
// Reference:
//
// - https://datatracker.ietf.org/doc/html/rfc9110
//
// - https://datatracker.ietf.org/doc/html/rfc9112
package http
