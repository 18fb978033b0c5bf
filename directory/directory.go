// Package directory manages the school's people and settings: employee and
// student records, grade assignments, academic results, announcements, and
// the admin configuration.
package directory

import (
	"greenwood.com/sis/core"
)

type Directory struct {
	db *core.Manager
}

func New(db *core.Manager) *Directory {
	return &Directory{db: db}
}
