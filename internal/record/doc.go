// Package record persists photo records in SQLite and acts as the triggering
// collaborator for their image attachments: Save persists a staged upload
// after the row is durable, Destroy removes the master after the row is
// deleted.
package record
