package sqlite

// initSchema инициализирует схему БД. Суммы хранятся строкой, чтобы не терять точность.
func (s *SQLiteStorage) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS customers (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS cards (
		id TEXT PRIMARY KEY,
		card_number TEXT NOT NULL UNIQUE,
		expiration_date DATETIME NOT NULL,
		status TEXT NOT NULL DEFAULT 'ACTIVE',
		customer_id TEXT NOT NULL REFERENCES customers(id),
		card_type TEXT NOT NULL,
		daily_limit TEXT,
		monthly_limit TEXT,
		interest_rate TEXT,
		available_balance TEXT,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS card_operations (
		id TEXT PRIMARY KEY,
		card_id TEXT NOT NULL REFERENCES cards(id),
		operation_date DATETIME NOT NULL,
		amount TEXT NOT NULL,
		operation_type TEXT NOT NULL,
		location TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS fraud_alerts (
		id TEXT PRIMARY KEY,
		card_id TEXT NOT NULL REFERENCES cards(id),
		description TEXT NOT NULL,
		level TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_cards_customer ON cards(customer_id);
	CREATE INDEX IF NOT EXISTS idx_operations_card_date ON card_operations(card_id, operation_date);
	CREATE INDEX IF NOT EXISTS idx_operations_type ON card_operations(operation_type);
	CREATE INDEX IF NOT EXISTS idx_operations_location ON card_operations(location);
	CREATE INDEX IF NOT EXISTS idx_alerts_card ON fraud_alerts(card_id);
	CREATE INDEX IF NOT EXISTS idx_alerts_level ON fraud_alerts(level);
	`

	_, err := s.DB.Exec(query)
	return err
}
