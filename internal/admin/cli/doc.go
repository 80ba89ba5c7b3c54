// Package cli provides the interactive PopCue admin console.
//
// App binds a workflow.Controller to the terminal: runREPL reads commands,
// App methods prompt for input and call the controller, and Printer renders
// notices, results and tables. The controller never prints; every user
// message reaches the terminal through Printer.Notify.
//
// Commands
//
//	Logged out: help, login, exit | quit
//	Logged in:  help, tenants, tenant <id>, generate, show, publish [id],
//	            unpublish, copy, surveys, view <id>, new, logout, exit | quit
package cli
