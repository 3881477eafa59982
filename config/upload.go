package config

import "gym-maintenance/pkg/constants"

type UploadConfig struct {
	AllowedMimeTypes []string
	MaxSizeMB        int64
	MaxFiles         int
	PathPrefix       string
}

// UploadContexts holds the rules for every media upload surface, keyed by the
// context name sent in the request path.
var UploadContexts = map[string]UploadConfig{
	constants.UploadContextChecklistPhoto.String(): {
		AllowedMimeTypes: []string{"image/jpeg", "image/png", "image/webp", "image/gif"},
		MaxSizeMB:        10,
		MaxFiles:         10,
		PathPrefix:       "checklists/photos",
	},
	constants.UploadContextChecklistVideo.String(): {
		AllowedMimeTypes: []string{"video/mp4", "video/webm", "video/avi"},
		MaxSizeMB:        100,
		MaxFiles:         3,
		PathPrefix:       "checklists/videos",
	},
	constants.UploadContextCallPhoto.String(): {
		AllowedMimeTypes: []string{"image/jpeg", "image/png", "image/webp"},
		MaxSizeMB:        10,
		MaxFiles:         5,
		PathPrefix:       "calls/photos",
	},
}
