package sqlite

// initSchema инициализирует схему БД.
// Уникальность (bank_id, transaction_id) обеспечивает идемпотентность записи
// при повторной доставке сообщения.
func (s *SQLiteStorage) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS flagged_transactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		bank_id TEXT NOT NULL,
		transaction_id TEXT NOT NULL,
		account_id TEXT NOT NULL,
		amount REAL NOT NULL,
		transaction_type TEXT,
		status TEXT NOT NULL DEFAULT 'flagged',
		reason TEXT NOT NULL,
		flagged_at DATETIME NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (bank_id, transaction_id)
	);

	CREATE INDEX IF NOT EXISTS idx_flagged_transaction_id ON flagged_transactions(transaction_id);
	CREATE INDEX IF NOT EXISTS idx_flagged_account_id ON flagged_transactions(account_id);
	CREATE INDEX IF NOT EXISTS idx_flagged_created_at ON flagged_transactions(created_at);
	`

	_, err := s.DB.Exec(query)
	return err
}
