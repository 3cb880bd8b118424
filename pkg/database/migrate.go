package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations leva o schema (usuarios, bancas, notas, reunioes,
// cronogramas, uploads) à última versão embutida no binário.
// Detecta a versão atual antes de aplicar, aplica só as pendentes e registra
// a transição. Banco em estado dirty não é tocado: exige intervenção manual.
func RunMigrations(db *sql.DB, logger *zap.Logger) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("falha ao carregar migrações: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("falha ao criar driver de migração: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("falha ao iniciar migração: %w", err)
	}

	from, err := schemaVersion(m)
	if err != nil {
		return err
	}
	if from.dirty {
		logger.Warn("schema em estado dirty, migrações não aplicadas", zap.Uint("version", from.version))
		return fmt.Errorf("schema dirty na versão %d", from.version)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("falha ao aplicar migrações: %w", err)
	}

	to, err := schemaVersion(m)
	if err != nil {
		return err
	}
	if to.version == from.version {
		logger.Info("schema já atualizado", zap.Uint("version", to.version))
	} else {
		logger.Info("schema migrado", zap.Uint("from", from.version), zap.Uint("to", to.version))
	}

	return nil
}

type migrationState struct {
	version uint
	dirty   bool
}

// schemaVersion versão 0 indica banco ainda sem nenhuma migração
func schemaVersion(m *migrate.Migrate) (migrationState, error) {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return migrationState{}, nil
	}
	if err != nil {
		return migrationState{}, fmt.Errorf("falha ao ler versão do schema: %w", err)
	}
	return migrationState{version: version, dirty: dirty}, nil
}
