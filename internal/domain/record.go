package domain

// Record is the abstract structured key/value form exchanged with the
// persistence collaborator. Field values are whatever the external
// parser produced; validation happens when an identity is built from it.
type Record map[string]any

// Key-file field names.
const (
	FieldKeyType             = "key_type"
	FieldMasterSecret        = "master_secret"
	FieldValidationPublicKey = "validation_public_key"
	FieldSequence            = "sequence"
)

// RecordStore persists a single Record. Implementations own all file
// mechanics; the core only sees load, save, and an existence probe so
// orchestration can refuse to overwrite an identity.
type RecordStore interface {
	Exists() bool
	Load() (Record, error)
	Save(Record) error
	Path() string
}
