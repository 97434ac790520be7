package store

import (
	"context"
	"errors"
	"fmt"

	"tasmeem/internal/utils"
	"tasmeem/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const adminUserTableName = "tasmeem.admin_users"

var adminUserColumns = utils.StructTagValues(types.AdminUser{})

type AdminUserRepository struct {
	pool *pgxpool.Pool
}

func NewAdminUserRepository(pool *pgxpool.Pool) *AdminUserRepository {
	return &AdminUserRepository{pool: pool}
}

func (r *AdminUserRepository) CountAdmins(ctx context.Context) (int, error) {
	query, args, err := psql().
		Select("count(*)").
		From(adminUserTableName).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to generate count admins query: %w", err)
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}

	return count, nil
}

// IsAdmin reports whether an admin row exists for the auth provider user id.
func (r *AdminUserRepository) IsAdmin(ctx context.Context, userID string) (bool, error) {
	_, err := r.AdminUserByUserID(ctx, userID)
	if errors.Is(err, types.ErrAdminUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *AdminUserRepository) AdminUserByUserID(ctx context.Context, userID string) (*types.AdminUser, error) {
	query, args, err := psql().
		Select(adminUserColumns...).
		From(adminUserTableName).
		Where(sq.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate admin user query: %w", err)
	}

	var admin types.AdminUser
	err = pgxscan.Get(ctx, r.pool, &admin, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrAdminUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch admin user: %w", err)
	}

	return &admin, nil
}

func (r *AdminUserRepository) CreateAdminUser(ctx context.Context, admin *types.AdminUser) error {
	admin.ID = utils.NanoID()

	values := utils.StructToMap(admin, "created_at")

	query, args, err := psql().
		Insert(adminUserTableName).
		SetMap(values).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate create admin user query: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&admin.CreatedAt); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	return nil
}
