// Package mcp exposes the checker as a Model Context Protocol server, so
// agents can check diagram documents, read stored reports and draw diagrams
// as tools.
package mcp
