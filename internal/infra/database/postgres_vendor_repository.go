package database

import (
	"context"
	"database/sql"
	"fmt"

	"gst_compliance_service/internal/domain/user"
	"gst_compliance_service/internal/domain/vendor"
)

type PostgresVendorRepository struct {
	db *sql.DB
}

func NewPostgresVendorRepository(db *sql.DB) *PostgresVendorRepository {
	return &PostgresVendorRepository{db: db}
}

const vendorAccountColumns = `v.id, v.user_id, v.business_name, v.business_type, v.turnover_range,
               v.gst_number, v.compliance_status, v.assigned_ca_id, v.created_at, v.updated_at,
               u.name, u.email, u.phone`

func (r *PostgresVendorRepository) ListAccounts(ctx context.Context) ([]*vendor.Account, error) {
	query := fmt.Sprintf(`SELECT %s
               FROM vendors v
               JOIN users u ON u.id = v.user_id
               WHERE u.role = $1`, vendorAccountColumns)

	rows, err := r.db.QueryContext(ctx, query, user.RoleVendor)
	if err != nil {
		return nil, fmt.Errorf("error listing vendor accounts: %w", err)
	}
	defer rows.Close()

	return scanAccounts(rows)
}

func (r *PostgresVendorRepository) ListAccountsByComplianceStatus(ctx context.Context, status vendor.ComplianceStatus) ([]*vendor.Account, error) {
	query := fmt.Sprintf(`SELECT %s
               FROM vendors v
               JOIN users u ON u.id = v.user_id
               WHERE u.role = $1 AND v.compliance_status = $2`, vendorAccountColumns)

	rows, err := r.db.QueryContext(ctx, query, user.RoleVendor, status)
	if err != nil {
		return nil, fmt.Errorf("error listing vendor accounts by compliance status: %w", err)
	}
	defer rows.Close()

	return scanAccounts(rows)
}

func scanAccounts(rows *sql.Rows) ([]*vendor.Account, error) {
	accounts := make([]*vendor.Account, 0)
	for rows.Next() {
		a := &vendor.Account{}
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.BusinessName, &a.BusinessType, &a.TurnoverRange,
			&a.GSTNumber, &a.ComplianceStatus, &a.AssignedCAID, &a.CreatedAt, &a.UpdatedAt,
			&a.UserName, &a.UserEmail, &a.Phone,
		); err != nil {
			return nil, fmt.Errorf("error scanning vendor account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vendor accounts: %w", err)
	}
	return accounts, nil
}
