// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppSettingsColumns holds the columns for the "app_settings" table.
	AppSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString},
	}
	// AppSettingsTable holds the schema information for the "app_settings" table.
	AppSettingsTable = &schema.Table{
		Name:       "app_settings",
		Columns:    AppSettingsColumns,
		PrimaryKey: []*schema.Column{AppSettingsColumns[0]},
	}
	// ProgressSnapshotsColumns holds the columns for the "progress_snapshots" table.
	ProgressSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user", Type: field.TypeString, Unique: true},
		{Name: "data", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProgressSnapshotsTable holds the schema information for the "progress_snapshots" table.
	ProgressSnapshotsTable = &schema.Table{
		Name:       "progress_snapshots",
		Columns:    ProgressSnapshotsColumns,
		PrimaryKey: []*schema.Column{ProgressSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progresssnapshot_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ProgressSnapshotsColumns[3]},
			},
		},
	}
	// SessionRecordsColumns holds the columns for the "session_records" table.
	SessionRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "current_index", Type: field.TypeInt, Default: 0},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "total_questions", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_updated", Type: field.TypeTime},
		{Name: "attempts", Type: field.TypeJSON, Nullable: true},
		{Name: "schema_version", Type: field.TypeInt, Default: 1},
	}
	// SessionRecordsTable holds the schema information for the "session_records" table.
	SessionRecordsTable = &schema.Table{
		Name:       "session_records",
		Columns:    SessionRecordsColumns,
		PrimaryKey: []*schema.Column{SessionRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionrecord_user",
				Unique:  false,
				Columns: []*schema.Column{SessionRecordsColumns[2]},
			},
			{
				Name:    "sessionrecord_user_created_at",
				Unique:  false,
				Columns: []*schema.Column{SessionRecordsColumns[2], SessionRecordsColumns[7]},
			},
			{
				Name:    "sessionrecord_completed",
				Unique:  false,
				Columns: []*schema.Column{SessionRecordsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppSettingsTable,
		ProgressSnapshotsTable,
		SessionRecordsTable,
	}
)

func init() {
}
