package repository

import "context"

// Kind identifies one of the persisted record types.
type Kind string

const (
	KindGame   Kind = "game"
	KindStats  Kind = "stats"
	KindConfig Kind = "config"
)

// RecordStore persists whole-record JSON blobs keyed by kind. Save overwrites
// the previous blob; there are no partial updates. Load reports found=false
// when no record of that kind has ever been saved.
type RecordStore interface {
	Load(ctx context.Context, kind Kind) (data []byte, found bool, err error)
	Save(ctx context.Context, kind Kind, data []byte) error
}
