package model

// MetaInfo is service information about the stored data
type MetaInfo struct {
	ID string `bson:"_id,omitempty"`

	// Version of the application which touched the database last
	Version string

	// DatabaseVersion is a version of stored records schema
	DatabaseVersion uint
}
