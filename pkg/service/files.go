package service

import (
	"path/filepath"
	"strings"

	"github.com/golker16/pizarra/pkg/models"
)

var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true,
}

var audioExts = map[string]bool{
	".mp3": true, ".wav": true,
}

// Default landing positions for dropped files when the caller gives none.
var (
	dropImagePos = [2]float64{40, 40}
	dropAudioPos = [2]float64{60, 60}
)

// DropFiles imports external files onto the current board, producing an
// image or audio note per recognized file. Unrecognized extensions are
// skipped. A file whose copy into the asset store fails still produces a
// note with an empty asset reference; an unavailable asset is never
// fatal.
func (s *Service) DropFiles(paths []string, pos *[2]float64) ([]*models.Note, error) {
	b, err := s.CurrentBoard()
	if err != nil {
		return nil, err
	}

	var created []*models.Note
	for _, path := range paths {
		ext := strings.ToLower(filepath.Ext(path))
		switch {
		case imageExts[ext]:
			ref, err := s.store.Add(path)
			if err != nil {
				s.log.WithError(err).WithField("file", path).Warn("image asset unavailable")
			}
			n := models.NewNote(models.KindImage, dropImagePos)
			n.Payload = models.ImagePayload{Asset: ref}
			if pos != nil {
				n.Pos = *pos
			}
			b.Insert(n)
			created = append(created, n)
		case audioExts[ext]:
			ref, err := s.store.Add(path)
			if err != nil {
				s.log.WithError(err).WithField("file", path).Warn("audio asset unavailable")
			}
			n := models.NewNote(models.KindAudio, dropAudioPos)
			n.Payload = models.AudioPayload{Asset: ref, Volume: models.DefaultVolume}
			if pos != nil {
				n.Pos = *pos
			}
			b.Insert(n)
			created = append(created, n)
		default:
			s.log.WithField("file", path).Debug("skipping unsupported drop")
		}
	}
	if len(created) > 0 {
		s.writeThrough("drop")
	}
	return created, nil
}
