package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// A nil field means the backing store is not configured.
type RepositoryProvider struct {
	JournalRepo           JournalRepositoryFacade
	RateSnapshotRepo      RateSnapshotRepositoryFacade
	ConversionHistoryRepo ConversionHistoryRepository
}
