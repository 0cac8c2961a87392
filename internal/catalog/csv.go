package catalog

import (
	"io"
	"strconv"
	"strings"

	"github.com/lmoura/vidcat/internal/model"
)

// utf8BOM makes spreadsheet applications pick UTF-8 when opening the
// file directly.
const utf8BOM = "\uFEFF"

var csvHeader = []string{"Arquivo", "Título", "Data", "Local", "Tags", "Notas", "Hora", "Lente", "Clip", "Câmera"}

// WriteCSV writes the export projection as CSV. Every field is quoted
// (inner quotes doubled) and tags are joined with "; ". The standard
// csv writer quotes only when necessary, which breaks the consumers of
// the legacy exports, so rows are assembled by hand.
func WriteCSV(w io.Writer, videos []model.VideoExport) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}
	if err := writeRow(w, csvHeader); err != nil {
		return err
	}

	for i := range videos {
		v := &videos[i]

		clip := ""
		if v.ClipNumber != 0 {
			clip = strconv.Itoa(v.ClipNumber)
		}

		row := []string{
			v.Filename,
			v.Title,
			v.Date,
			v.Location,
			strings.Join(v.Tags, "; "),
			v.Notes,
			v.RecordingTime,
			v.Lens,
			clip,
			v.CameraModel,
		}
		if err := writeRow(w, row); err != nil {
			return err
		}
	}

	return nil
}

func writeRow(w io.Writer, fields []string) error {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}
