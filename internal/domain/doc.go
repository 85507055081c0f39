// Package domain defines the core business entities and their validation
// rules: users, memory items, and review schedules.
package domain
