// Package uri turns free-form navigation input into a connection [Target]
// and resolves link references found on a page against that target.
//
// Only the http scheme is understood. The accepted grammar is deliberately
// permissive:
//
//	[http://]host[:port][/path]
//
// Reference:
//
// - https://datatracker.ietf.org/doc/html/rfc3986#section-5.2
package uri
