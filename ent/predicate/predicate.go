// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AppSetting is the predicate function for appsetting builders.
type AppSetting func(*sql.Selector)

// ProgressSnapshot is the predicate function for progresssnapshot builders.
type ProgressSnapshot func(*sql.Selector)

// SessionRecord is the predicate function for sessionrecord builders.
type SessionRecord func(*sql.Selector)
