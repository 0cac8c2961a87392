package catalog

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lmoura/vidcat/internal/model"
)

// ErrPayloadShape means a payload does not look like a catalog at all.
// Such payloads are rejected whole; nothing from them is merged.
var ErrPayloadShape = errors.New("payload is not a valid catalog")

// Payload is an imported catalog document validated and ready to merge.
// It is consumed once and then discarded: its entries get flattened
// into the working set.
type Payload struct {
	CameraModel string
	Entries     []model.VideoExport

	// Invalid counts entries dropped for a missing or unusable filename
	Invalid int
}

// envelope separates a missing videos array from an empty one and lets
// broken entries fail one by one instead of failing the document.
type envelope struct {
	GeneratedAt string            `json:"generatedAt"`
	CameraModel string            `json:"cameraModel"`
	TotalVideos *int              `json:"totalVideos"`
	Videos      []json.RawMessage `json:"videos"`
}

// DecodePayload parses and validates a single catalog document. The
// top-level shape is all-or-nothing: broken JSON, a missing videos
// array or a totalVideos count that disagrees with the array reject the
// whole document. Individual entries without a usable filename are
// dropped and counted, not fatal.
func DecodePayload(data []byte) (*Payload, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPayloadShape, err)
	}

	if env.Videos == nil {
		return nil, fmt.Errorf("%w: missing videos array", ErrPayloadShape)
	}

	total := 0
	if env.TotalVideos != nil {
		total = *env.TotalVideos
	}
	if total != len(env.Videos) {
		return nil, fmt.Errorf("%w: totalVideos is %d, videos has %d entries", ErrPayloadShape, total, len(env.Videos))
	}

	p := Payload{CameraModel: env.CameraModel}
	for _, raw := range env.Videos {
		var entry model.VideoExport
		if err := json.Unmarshal(raw, &entry); err != nil || entry.Filename == "" {
			p.Invalid++
			continue
		}
		p.Entries = append(p.Entries, entry)
	}

	return &p, nil
}
