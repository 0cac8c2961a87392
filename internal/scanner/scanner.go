// Package scanner discovers video files on disk for cataloging.
package scanner

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// File is a discovered video file.
type File struct {
	Name string
	Size int64
}

var videoExtensions = []string{
	"mkv", "mp4", "vob", "3gp", "avi", "wmv", "flv", "ogv", "mp4v", "ts", "mpeg4", "mjpg", "mpg", "mov", "xvid",
	"insv", "lrv", "360",
}

func isVideoExtension(fileName string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	for _, videoExtension := range videoExtensions {
		if ext == videoExtension {
			return true
		}
	}
	return false
}

func isVideoContent(path string) bool {
	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mime.String(), "video/")
}

// Scan walks dir and returns all video files found, sorted by name.
// Files without a known video extension are sniffed by content.
func Scan(dir string) ([]File, error) {
	var files []File

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isVideoExtension(d.Name()) && !isVideoContent(path) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		files = append(files, File{Name: d.Name(), Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan directory failed: %w", err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}
