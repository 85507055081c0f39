// Package store defines the persistence interfaces implemented by the
// platform-specific storage backends, together with the common error
// taxonomy they report.
package store
