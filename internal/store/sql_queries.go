package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-web3-uploader/models"
)

const (
	runsTable       = "runs"
	pinResultsTable = "pin_results"
)

var (
	runColumns    = []string{"run_id", "network", "total", "started_at", "finished_at"}
	recordColumns = []string{"url", "cid", "web3_url", "status"}
)

// psql renders $n placeholders. Both pgx and go-sqlite3 accept them.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func createRunQuery(run models.Run) (string, []any, error) {
	return psql.Insert(runsTable).
		Columns("run_id", "network", "total", "started_at").
		Values(run.RunID, run.Network, run.Total, run.StartedAt.UTC()).
		ToSql()
}

func finishRunQuery(runID string, finishedAt time.Time) (string, []any, error) {
	return psql.Update(runsTable).
		Set("finished_at", finishedAt.UTC()).
		Where(sq.Eq{"run_id": runID}).
		ToSql()
}

func saveRecordQuery(runID string, position int, record models.OutputRecord, createdAt time.Time) (string, []any, error) {
	return psql.Insert(pinResultsTable).
		Columns("run_id", "position", "url", "cid", "web3_url", "status", "created_at").
		Values(runID, position, record.URL, record.CID, record.Web3URL, record.Status, createdAt.UTC()).
		ToSql()
}

func getRecordsQuery(runID string) (string, []any, error) {
	return psql.Select(recordColumns...).
		From(pinResultsTable).
		Where(sq.Eq{"run_id": runID}).
		OrderBy("position ASC").
		ToSql()
}

func getRunsQuery() (string, []any, error) {
	return psql.Select(runColumns...).
		From(runsTable).
		OrderBy("started_at DESC", "run_id DESC").
		ToSql()
}

func getRunQuery(runID string) (string, []any, error) {
	return psql.Select(runColumns...).
		From(runsTable).
		Where(sq.Eq{"run_id": runID}).
		ToSql()
}
