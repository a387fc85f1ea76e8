// Package console prints the tool's progress lines. Every step of a build
// reports one tagged, severity-colored line ([SUCCESS], [INFO], [WARNING],
// [ERROR], [FATAL]) through a Reporter. Reporting a fatal line never exits
// the process; the command layer decides when to stop.
package console
