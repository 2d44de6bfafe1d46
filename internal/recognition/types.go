package recognition

import "errors"

// Gateway errors. Callers branch on these with errors.Is; everything else
// coming out of Compare is a transport or protocol failure.
var (
	// ErrSourceImageNotFound means the recognition service could not locate
	// a referenced image in blob storage.
	ErrSourceImageNotFound = errors.New("source image not found in storage")

	// ErrIndeterminatePayload means the service answered successfully but the
	// response was structurally invalid (no face_matches field). This is a
	// defect on the service side and is never coerced into a verdict.
	ErrIndeterminatePayload = errors.New("recognition response missing face matches payload")
)

// StorageRef points at an image stored in a blob bucket.
type StorageRef struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

// Image is either inline bytes or a reference to blob storage. Exactly one
// of the two fields is set.
type Image struct {
	Bytes   []byte      `json:"bytes,omitempty"`
	Storage *StorageRef `json:"storage,omitempty"`
}

// InlineImage wraps raw image bytes.
func InlineImage(b []byte) Image {
	return Image{Bytes: b}
}

// StoredImage references an image by bucket and key.
func StoredImage(bucket, key string) Image {
	return Image{Storage: &StorageRef{Bucket: bucket, Key: key}}
}

// IsZero reports whether the image carries neither bytes nor a storage ref.
func (i Image) IsZero() bool {
	return len(i.Bytes) == 0 && i.Storage == nil
}

type compareRequest struct {
	SourceImage         Image   `json:"source_image"`
	TargetImage         Image   `json:"target_image"`
	SimilarityThreshold float64 `json:"similarity_threshold"`
}

type faceMatch struct {
	Similarity float64 `json:"similarity"`
}

// compareResponse distinguishes a missing face_matches field (nil pointer,
// a protocol defect) from an empty match list (a valid "different" answer).
type compareResponse struct {
	FaceMatches    *[]faceMatch `json:"face_matches"`
	UnmatchedFaces []faceMatch  `json:"unmatched_faces"`
}

type errorResponse struct {
	Error string `json:"error"`
}
