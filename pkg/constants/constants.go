package constants

//============== UPLOAD CONTEXTS ==============

// UploadContext names a media upload surface; it is the last segment of
// POST /api/media/:context.
type UploadContext string

const (
	UploadContextChecklistPhoto UploadContext = "checklist_photo"
	UploadContextChecklistVideo UploadContext = "checklist_video"
	UploadContextCallPhoto      UploadContext = "call_photo"
)

func (uc UploadContext) String() string {
	return string(uc)
}

//============== CACHE KEYS ==============

const (
	// lockout:<userID> -> "locked"
	CacheKeyLockout = "lockout:%s"

	// login_attempts:<userID> -> count
	CacheKeyLoginAttempts = "login_attempts:%s"
)
