package blobstore

const (
	DefaultRegion   = "us-east-1"
	ContentTypeJSON = "application/json"

	// Objects are stored as plans/<id>.json
	KeyPrefix = "plans/"
	KeySuffix = ".json"
)
