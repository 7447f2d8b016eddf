package port

import "stemcount/internal/domain"

type CountStore interface {
	SaveCorpus(meta domain.CorpusMeta, counts domain.WordCounts) error

	GetCorpus(id string) (domain.CorpusMeta, error)

	ListCorpora() ([]domain.CorpusMeta, error)

	DeleteCorpus(id string) error

	GetCounts(id string) (domain.WordCounts, error)

	TopStems(id string, n int) ([]domain.StemCount, error)

	Close() error
}
