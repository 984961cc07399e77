// Package tui implements the interactive terminal client for the task API.
//
// The screen holds a create form above the task list. All state changes are
// reconciled from server responses: a created task is prepended, an updated
// task replaces the row with the same id, and a deleted task is removed only
// once the server confirms.
package tui
