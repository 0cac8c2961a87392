package catalog

import (
	"encoding/json"
	"io"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/lmoura/vidcat/internal/model"
)

// ProjectForExport strips the working set down to the wire shape:
// internal fields (id, size) disappear, structurally required fields
// stay even when empty and optional fields are left at their zero value
// so serialization omits them.
func ProjectForExport(videos []model.VideoFile) []model.VideoExport {
	out := make([]model.VideoExport, 0, len(videos))

	for i := range videos {
		v := &videos[i]
		m := &v.Metadata

		entry := model.VideoExport{
			Filename:      v.Filename,
			Title:         m.Title,
			Date:          m.Date,
			Location:      m.Location,
			Tags:          append([]string{}, m.Tags...),
			Notes:         m.Notes,
			Favorite:      m.Favorite,
			RecordingTime: m.RecordingTime,
			Lens:          m.Lens,
			ClipNumber:    m.ClipNumber,
			CameraModel:   m.CameraModel,
			Thumbnail:     m.Thumbnail,
		}
		if len(m.CustomFields) > 0 {
			entry.CustomFields = append([]model.CustomField(nil), m.CustomFields...)
		}

		out = append(out, entry)
	}

	return out
}

// NewCatalog wraps exported entries into a catalog document. The
// totalVideos invariant is established here and nowhere else.
func NewCatalog(cameraModel string, videos []model.VideoExport) model.Catalog {
	if videos == nil {
		videos = []model.VideoExport{}
	}
	return model.Catalog{
		GeneratedAt: strfmt.DateTime(time.Now().UTC()),
		CameraModel: cameraModel,
		TotalVideos: len(videos),
		Videos:      videos,
	}
}

// WriteJSON serializes a catalog document to w, indented for humans.
func WriteJSON(w io.Writer, doc model.Catalog) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
