package store

import (
	"context"
	"fmt"

	"tasmeem/internal/utils"
	"tasmeem/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const submissionTableName = "tasmeem.submissions"

var submissionColumns = utils.StructTagValues(types.Submission{})

type SubmissionRepository struct {
	pool *pgxpool.Pool
}

func NewSubmissionRepository(pool *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{pool: pool}
}

// CreateSubmission inserts a new row. The id is generated here and
// created_at is assigned by the database.
func (r *SubmissionRepository) CreateSubmission(ctx context.Context, submission *types.Submission) error {

	submission.ID = utils.NanoID()
	if submission.Status == "" {
		submission.Status = types.SubmissionStatusPending
	}
	if submission.QuestionnaireAnswers == nil {
		submission.QuestionnaireAnswers = types.Answers{}
	}

	values := utils.StructToMap(submission, "created_at")

	query, args, err := psql().
		Insert(submissionTableName).
		SetMap(values).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert submission query: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&submission.CreatedAt)
	return utils.ErrorWrapOrNil(err, "failed to create submission")

}

// Submissions lists every submission, newest first.
func (r *SubmissionRepository) Submissions(ctx context.Context) ([]*types.Submission, error) {

	query, args, err := psql().
		Select(submissionColumns...).
		From(submissionTableName).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate submissions query: %w", err)
	}

	var submissions = make([]*types.Submission, 0)
	err = pgxscan.Select(ctx, r.pool, &submissions, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch submissions: %w", err)
	}

	return submissions, nil
}

func (r *SubmissionRepository) Submission(ctx context.Context, id string) (*types.Submission, error) {

	query, args, err := psql().
		Select(submissionColumns...).
		From(submissionTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate submission query: %w", err)
	}

	var submission types.Submission
	err = pgxscan.Get(ctx, r.pool, &submission, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to fetch submission: %w", err)
	}

	return &submission, nil
}

func (r *SubmissionRepository) UpdateSubmissionStatus(ctx context.Context, id string, status types.SubmissionStatus) error {

	query, args, err := psql().
		Update(submissionTableName).
		Set("status", status).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate update submission status query for submission %s: %w", id, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update submission status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return types.ErrSubmissionNotFound
	}

	return nil
}
