package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-web3-uploader/internal/logger"
	"github.com/MKhiriev/go-web3-uploader/models"
)

// resultRepository is the SQL implementation of [ResultRepository] over the
// "runs" and "pin_results" tables.
//
// All methods obtain a context-scoped logger via [logger.FromContext], so log
// lines written during a batch carry its run_id.
type resultRepository struct {
	logger *logger.Logger
	db     *DB

	now func() time.Time
}

// NewResultRepository constructs a [ResultRepository] backed by db.
func NewResultRepository(db *DB, logger *logger.Logger) ResultRepository {
	logger.Debug().Msg("creating result repository")
	return &resultRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// CreateRun inserts the run header. A reused run id yields
// [ErrRunAlreadyExists].
func (r *resultRepository) CreateRun(ctx context.Context, run models.Run) error {
	log := logger.FromContext(ctx)

	query, args, err := createRunQuery(run)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*resultRepository.CreateRun").Msg("error inserting run")
		return r.mapExecError(err, ErrRunAlreadyExists)
	}

	return nil
}

// FinishRun stamps the finish time of a run. Returns [ErrRunNotFound] when no
// row matched.
func (r *resultRepository) FinishRun(ctx context.Context, runID string, finishedAt time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := finishRunQuery(runID, finishedAt)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*resultRepository.FinishRun").Msg("error updating run")
		return r.mapExecError(err, nil)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRunNotFound
	}

	return nil
}

// SaveRecord appends record at position within runID. Records are never
// updated; a second save at the same position yields
// [ErrRecordAlreadyExists].
func (r *resultRepository) SaveRecord(ctx context.Context, runID string, position int, record models.OutputRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := saveRecordQuery(runID, position, record, r.now())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*resultRepository.SaveRecord").
			Int("position", position).
			Msg("error inserting record")
		return r.mapExecError(err, ErrRecordAlreadyExists)
	}

	return nil
}

// GetRecords returns the records of runID in input order. An unknown run
// yields an empty slice.
func (r *resultRepository) GetRecords(ctx context.Context, runID string) ([]models.OutputRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := getRecordsQuery(runID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*resultRepository.GetRecords").Msg("error querying records")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.OutputRecord, 0)
	for rows.Next() {
		var (
			record  models.OutputRecord
			cid     sql.NullString
			web3URL sql.NullString
		)
		if err = rows.Scan(&record.URL, &cid, &web3URL, &record.Status); err != nil {
			log.Err(err).Str("func", "*resultRepository.GetRecords").Msg("error scanning record")
			return nil, fmt.Errorf("%w: %v", ErrScanningRow, err)
		}
		record.CID = nullStringPtr(cid)
		record.Web3URL = nullStringPtr(web3URL)
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return records, nil
}

// GetRuns lists all runs, newest first.
func (r *resultRepository) GetRuns(ctx context.Context) ([]models.Run, error) {
	log := logger.FromContext(ctx)

	query, args, err := getRunsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*resultRepository.GetRuns").Msg("error querying runs")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	runs := make([]models.Run, 0)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			log.Err(err).Str("func", "*resultRepository.GetRuns").Msg("error scanning run")
			return nil, err
		}
		runs = append(runs, run)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScanningRows, err)
	}

	return runs, nil
}

// GetRun returns a single run or [ErrRunNotFound].
func (r *resultRepository) GetRun(ctx context.Context, runID string) (models.Run, error) {
	log := logger.FromContext(ctx)

	query, args, err := getRunQuery(runID)
	if err != nil {
		return models.Run{}, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	run, err := scanRun(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Run{}, ErrRunNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*resultRepository.GetRun").Msg("error scanning run")
		return models.Run{}, err
	}

	return run, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (models.Run, error) {
	var (
		run        models.Run
		finishedAt sql.NullTime
	)
	if err := row.Scan(&run.RunID, &run.Network, &run.Total, &run.StartedAt, &finishedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Run{}, err
		}
		return models.Run{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}
	if finishedAt.Valid {
		t := finishedAt.Time
		run.FinishedAt = &t
	}
	return run, nil
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// mapExecError turns a failed INSERT or UPDATE into a package sentinel.
// onConflict is returned for constraint violations when non-nil.
func (r *resultRepository) mapExecError(err error, onConflict error) error {
	switch r.db.classify(err) {
	case Conflict:
		if onConflict != nil {
			return onConflict
		}
	case Unavailable:
		return fmt.Errorf("%w: %v", ErrDatabaseUnavailable, err)
	}
	return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
}
