package migrations

import (
	"context"
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/reservely/reservation-service/pkg/txmanager"
)

//go:embed *.sql
var fs embed.FS

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Up применяет ещё не применённые миграции по порядку имён файлов.
// Каждая миграция выполняется в отдельной транзакции вместе с записью в schema_migrations.
func Up(ctx context.Context, db txmanager.DBExecutor, txManager TransactionManager, logger Logger) error {
	files, err := migrationFiles()
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW())`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	for _, f := range files {
		var applied bool
		if err := db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, f).Scan(&applied); err != nil {
			return fmt.Errorf("check %s: %w", f, err)
		}
		if applied {
			continue
		}

		body, err := fs.ReadFile(f)
		if err != nil {
			return err
		}

		err = txManager.Do(ctx, func(txCtx context.Context) error {
			executor := txmanager.GetExecutor(txCtx, db)
			if _, err := executor.ExecContext(txCtx, string(body)); err != nil {
				return err
			}
			_, err := executor.ExecContext(txCtx, `INSERT INTO schema_migrations (version) VALUES ($1)`, f)
			return err
		})
		if err != nil {
			return fmt.Errorf("apply %s: %w", f, err)
		}

		logger.Info("Migrations: applied %s", f)
	}

	return nil
}

func migrationFiles() ([]string, error) {
	entries, err := fs.ReadDir(".")
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	return files, nil
}
