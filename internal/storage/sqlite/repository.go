package sqlite

import (
	"card-fraud-system/internal/storage"
)

var (
	_ storage.CardRegistry       = (*SQLiteStorage)(nil)
	_ storage.OperationLedger    = (*SQLiteStorage)(nil)
	_ storage.AlertSink          = (*SQLiteStorage)(nil)
	_ storage.CustomerRepository = (*SQLiteStorage)(nil)
	_ storage.ReportRepository   = (*SQLiteStorage)(nil)
	_ storage.Cleaner            = (*SQLiteStorage)(nil)
)

// NewRepositories возвращает все хранилища поверх одного подключения SQLite
func NewRepositories(s *SQLiteStorage) *storage.Repositories {
	return &storage.Repositories{
		Cards:      s,
		Operations: s,
		Alerts:     s,
		Customers:  s,
		Reports:    s,
		Cleaner:    s,
	}
}
