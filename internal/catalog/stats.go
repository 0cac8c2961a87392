package catalog

import "github.com/lmoura/vidcat/internal/model"

// UnknownCamera is the bucket for entries without a camera model. The
// label matches the one used for an undecoded lens so the UI filters
// stay consistent.
const UnknownCamera = "Desconhecida"

// Stats summarizes the working set for filter widgets.
type Stats struct {
	Total        int
	WithTitle    int
	WithLocation int
	WithTags     int
	Favorites    int

	// ByCamera bucket counts always sum up to Total
	ByCamera map[string]int
}

// ComputeStats derives counters over the working set.
func ComputeStats(videos []model.VideoFile) Stats {
	stats := Stats{
		Total:    len(videos),
		ByCamera: map[string]int{},
	}

	for i := range videos {
		m := &videos[i].Metadata
		if m.Title != "" {
			stats.WithTitle++
		}
		if m.Location != "" {
			stats.WithLocation++
		}
		if len(m.Tags) > 0 {
			stats.WithTags++
		}
		if m.Favorite {
			stats.Favorites++
		}

		camera := m.CameraModel
		if camera == "" {
			camera = UnknownCamera
		}
		stats.ByCamera[camera]++
	}

	return stats
}
