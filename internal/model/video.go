package model

// CustomField is a single user-defined key/value annotation. Keys are
// not required to be unique and insertion order is preserved.
type CustomField struct {
	Key   string `bson:"key" json:"key"`
	Value string `bson:"value" json:"value"`
}

// VideoMetadata holds everything a user can say about a single video.
type VideoMetadata struct {
	// Core fields, always kept (may be empty)
	Title    string   `bson:"title" json:"title"`
	Date     string   `bson:"date" json:"date"` // ISO date (YYYY-MM-DD) or empty
	Location string   `bson:"location" json:"location"`
	Tags     []string `bson:"tags" json:"tags"`
	Notes    string   `bson:"notes" json:"notes"`

	Favorite bool `bson:"favorite" json:"favorite"`

	// Auto-detected from the filename, read-only once set
	RecordingTime string `bson:"recordingtime,omitempty" json:"recordingTime,omitempty"` // HH:MM:SS
	Lens          string `bson:"lens,omitempty" json:"lens,omitempty"`
	ClipNumber    int    `bson:"clipnumber,omitempty" json:"clipNumber,omitempty"`

	// CameraModel is the vendor label the entry was ingested with
	CameraModel string `bson:"cameramodel,omitempty" json:"cameraModel,omitempty"`

	// Thumbnail is an opaque encoded image (usually a data URL)
	Thumbnail string `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`

	CustomFields []CustomField `bson:"customfields,omitempty" json:"customFields,omitempty"`
}

// VideoFile is a single entry of the working set.
type VideoFile struct {
	// Unique ID, stable for the session; never exported
	ID string `bson:"_id"`

	// Filename is the natural key across catalogs
	Filename string `bson:"filename"`

	// Size in bytes, for display only; never exported
	Size int64 `bson:"size"`

	Metadata VideoMetadata `bson:"metadata"`
}

// HasAutoFields reports whether filename parsing filled anything in.
func (v *VideoFile) HasAutoFields() bool {
	m := &v.Metadata
	return m.RecordingTime != "" || m.Lens != "" || m.ClipNumber != 0
}
