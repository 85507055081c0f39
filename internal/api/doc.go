// Package api implements the HTTP handlers for the MemBuddy API:
// registration and login, mnemonic-aid generation, memory item CRUD, and
// review scheduling. Handlers compose the auth middleware with the stores
// and never touch a resource without the authenticated user's ID.
package api
