package model

import "github.com/go-openapi/strfmt"

// VideoExport is the wire shape of a single video inside a Catalog.
// Filename, title, date, location, tags and notes are always written,
// even when empty; the rest is omitted entirely when unset.
type VideoExport struct {
	Filename string   `json:"filename"`
	Title    string   `json:"title"`
	Date     string   `json:"date"`
	Location string   `json:"location"`
	Tags     []string `json:"tags"`
	Notes    string   `json:"notes"`

	Favorite      bool          `json:"favorite,omitempty"`
	RecordingTime string        `json:"recordingTime,omitempty"`
	Lens          string        `json:"lens,omitempty"`
	ClipNumber    int           `json:"clipNumber,omitempty"`
	CameraModel   string        `json:"cameraModel,omitempty"`
	Thumbnail     string        `json:"thumbnail,omitempty"`
	CustomFields  []CustomField `json:"customFields,omitempty"`
}

// Catalog is the export/import wire shape. TotalVideos must equal
// len(Videos) for the document to be accepted on import.
type Catalog struct {
	GeneratedAt strfmt.DateTime `json:"generatedAt"`
	CameraModel string          `json:"cameraModel"`
	TotalVideos int             `json:"totalVideos"`
	Videos      []VideoExport   `json:"videos"`
}
