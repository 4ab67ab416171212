package storage

import (
	log "github.com/sirupsen/logrus"

	"github.com/aidi-lab/pubnet/internal/pubrecord"
)

// Loader is the contract between a backing store and the aggregation layer:
// one synchronous full load of the working set.
type Loader interface {
	LoadAll() ([]pubrecord.Publication, error)
	LoadHomeAuthors() ([]pubrecord.HomeAuthor, error)
}

// LoadSnapshot performs a full load through the given loader. A failure on
// either table is logged and degrades to an empty snapshot, so downstream
// aggregation renders placeholders instead of crashing.
func LoadSnapshot(l Loader) *pubrecord.Snapshot {
	pubs, err := l.LoadAll()
	if err != nil {
		log.WithError(err).Error("loading publications, serving empty snapshot")
		return pubrecord.Empty()
	}

	authors, err := l.LoadHomeAuthors()
	if err != nil {
		log.WithError(err).Error("loading home authors, serving empty snapshot")
		return pubrecord.Empty()
	}

	log.WithFields(log.Fields{
		"publications": len(pubs),
		"home_authors": len(authors),
	}).Info("snapshot loaded")

	return pubrecord.NewSnapshot(pubs, authors)
}
