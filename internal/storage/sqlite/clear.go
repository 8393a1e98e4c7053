package sqlite

import "context"

// ClearFlaggedTransactions удаляет все помеченные транзакции из БД
func (s *SQLiteStorage) ClearFlaggedTransactions(ctx context.Context) error {
	query := `DELETE FROM flagged_transactions`
	_, err := s.DB.ExecContext(ctx, query)
	return err
}
