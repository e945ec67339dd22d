// Package application provides application initialization and dependency wiring.
// It turns resolved configuration into a runnable App that reads grouped
// integers, summarizes them and renders the report, keeping the main package
// focused on CLI parsing and process exit handling.
package application
