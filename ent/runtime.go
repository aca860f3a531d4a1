// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/rehan/quizly/ent/appsetting"
	"github.com/rehan/quizly/ent/progresssnapshot"
	"github.com/rehan/quizly/ent/schema"
	"github.com/rehan/quizly/ent/sessionrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appsettingFields := schema.AppSetting{}.Fields()
	_ = appsettingFields
	// appsettingDescKey is the schema descriptor for key field.
	appsettingDescKey := appsettingFields[0].Descriptor()
	// appsetting.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	appsetting.KeyValidator = appsettingDescKey.Validators[0].(func(string) error)
	progresssnapshotFields := schema.ProgressSnapshot{}.Fields()
	_ = progresssnapshotFields
	// progresssnapshotDescUser is the schema descriptor for user field.
	progresssnapshotDescUser := progresssnapshotFields[0].Descriptor()
	// progresssnapshot.UserValidator is a validator for the "user" field. It is called by the builders before save.
	progresssnapshot.UserValidator = progresssnapshotDescUser.Validators[0].(func(string) error)
	// progresssnapshotDescUpdatedAt is the schema descriptor for updated_at field.
	progresssnapshotDescUpdatedAt := progresssnapshotFields[2].Descriptor()
	// progresssnapshot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	progresssnapshot.DefaultUpdatedAt = progresssnapshotDescUpdatedAt.Default.(func() time.Time)
	// progresssnapshot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	progresssnapshot.UpdateDefaultUpdatedAt = progresssnapshotDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessionrecordFields := schema.SessionRecord{}.Fields()
	_ = sessionrecordFields
	// sessionrecordDescSessionID is the schema descriptor for session_id field.
	sessionrecordDescSessionID := sessionrecordFields[0].Descriptor()
	// sessionrecord.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionrecord.SessionIDValidator = sessionrecordDescSessionID.Validators[0].(func(string) error)
	// sessionrecordDescUser is the schema descriptor for user field.
	sessionrecordDescUser := sessionrecordFields[1].Descriptor()
	// sessionrecord.UserValidator is a validator for the "user" field. It is called by the builders before save.
	sessionrecord.UserValidator = sessionrecordDescUser.Validators[0].(func(string) error)
	// sessionrecordDescScore is the schema descriptor for score field.
	sessionrecordDescScore := sessionrecordFields[2].Descriptor()
	// sessionrecord.DefaultScore holds the default value on creation for the score field.
	sessionrecord.DefaultScore = sessionrecordDescScore.Default.(int)
	// sessionrecordDescCurrentIndex is the schema descriptor for current_index field.
	sessionrecordDescCurrentIndex := sessionrecordFields[3].Descriptor()
	// sessionrecord.DefaultCurrentIndex holds the default value on creation for the current_index field.
	sessionrecord.DefaultCurrentIndex = sessionrecordDescCurrentIndex.Default.(int)
	// sessionrecordDescCompleted is the schema descriptor for completed field.
	sessionrecordDescCompleted := sessionrecordFields[4].Descriptor()
	// sessionrecord.DefaultCompleted holds the default value on creation for the completed field.
	sessionrecord.DefaultCompleted = sessionrecordDescCompleted.Default.(bool)
	// sessionrecordDescTotalQuestions is the schema descriptor for total_questions field.
	sessionrecordDescTotalQuestions := sessionrecordFields[5].Descriptor()
	// sessionrecord.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	sessionrecord.DefaultTotalQuestions = sessionrecordDescTotalQuestions.Default.(int)
	// sessionrecordDescCreatedAt is the schema descriptor for created_at field.
	sessionrecordDescCreatedAt := sessionrecordFields[6].Descriptor()
	// sessionrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	sessionrecord.DefaultCreatedAt = sessionrecordDescCreatedAt.Default.(func() time.Time)
	// sessionrecordDescLastUpdated is the schema descriptor for last_updated field.
	sessionrecordDescLastUpdated := sessionrecordFields[7].Descriptor()
	// sessionrecord.DefaultLastUpdated holds the default value on creation for the last_updated field.
	sessionrecord.DefaultLastUpdated = sessionrecordDescLastUpdated.Default.(func() time.Time)
	// sessionrecord.UpdateDefaultLastUpdated holds the default value on update for the last_updated field.
	sessionrecord.UpdateDefaultLastUpdated = sessionrecordDescLastUpdated.UpdateDefault.(func() time.Time)
	// sessionrecordDescSchemaVersion is the schema descriptor for schema_version field.
	sessionrecordDescSchemaVersion := sessionrecordFields[9].Descriptor()
	// sessionrecord.DefaultSchemaVersion holds the default value on creation for the schema_version field.
	sessionrecord.DefaultSchemaVersion = sessionrecordDescSchemaVersion.Default.(int)
}
