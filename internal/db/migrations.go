package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE TABLE IF NOT EXISTS customers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		company VARCHAR(255),
		category VARCHAR(64) NOT NULL DEFAULT 'عادي',
		phone VARCHAR(32),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS billboards (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		location TEXT,
		municipality VARCHAR(128),
		size VARCHAR(32) NOT NULL,
		level VARCHAR(32) NOT NULL DEFAULT 'عادي',
		faces INT NOT NULL DEFAULT 1,
		status VARCHAR(32) NOT NULL DEFAULT 'AVAILABLE',
		image_url TEXT,
		is_partnership BOOLEAN NOT NULL DEFAULT FALSE,
		capital NUMERIC(18,2) NOT NULL DEFAULT 0,
		capital_remaining NUMERIC(18,2) NOT NULL DEFAULT 0,
		partner_companies TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS contracts (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		number VARCHAR(64) NOT NULL,
		customer_id UUID REFERENCES customers(id),
		customer_name VARCHAR(255) NOT NULL,
		customer_category VARCHAR(64) NOT NULL DEFAULT 'عادي',
		ad_type VARCHAR(128),
		start_at DATE NOT NULL,
		end_at DATE NOT NULL,
		duration_months INT NOT NULL DEFAULT 1,
		base_total NUMERIC(18,2) NOT NULL,
		discount_type VARCHAR(16) NOT NULL DEFAULT 'percent',
		discount_value NUMERIC(18,2) NOT NULL DEFAULT 0,
		discount_amount NUMERIC(18,2) NOT NULL DEFAULT 0,
		final_total NUMERIC(18,2) NOT NULL,
		installation_cost NUMERIC(18,2) NOT NULL DEFAULT 0,
		rental_cost_only NUMERIC(18,2) NOT NULL DEFAULT 0,
		operating_fee_rate NUMERIC(5,2) NOT NULL DEFAULT 3,
		operating_fee NUMERIC(18,2) NOT NULL DEFAULT 0,
		status VARCHAR(32) NOT NULL DEFAULT 'ACTIVE',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_contract_number ON contracts (number);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_status ON contracts (status);`,
	`CREATE TABLE IF NOT EXISTS contract_billboards (
		contract_id UUID NOT NULL REFERENCES contracts(id) ON DELETE CASCADE,
		billboard_id UUID NOT NULL REFERENCES billboards(id),
		PRIMARY KEY (contract_id, billboard_id)
	);`,
	`CREATE TABLE IF NOT EXISTS installments (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		contract_id UUID NOT NULL REFERENCES contracts(id) ON DELETE CASCADE,
		seq INT NOT NULL,
		amount NUMERIC(18,2) NOT NULL,
		payment_type VARCHAR(32) NOT NULL,
		description TEXT,
		due_date DATE NOT NULL,
		paid_at TIMESTAMPTZ
	);`,
	`CREATE INDEX IF NOT EXISTS idx_installments_contract ON installments (contract_id, seq);`,
	`CREATE TABLE IF NOT EXISTS pricing (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		size VARCHAR(32) NOT NULL,
		level VARCHAR(32) NOT NULL,
		category VARCHAR(64) NOT NULL,
		one_month NUMERIC(18,2),
		two_months NUMERIC(18,2),
		three_months NUMERIC(18,2),
		six_months NUMERIC(18,2),
		full_year NUMERIC(18,2),
		one_day NUMERIC(18,2)
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_pricing_triple ON pricing (size, level, category);`,
	`CREATE TABLE IF NOT EXISTS pricing_categories (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(64) NOT NULL UNIQUE
	);`,
	`CREATE TABLE IF NOT EXISTS partner_transactions (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		billboard_id UUID NOT NULL REFERENCES billboards(id),
		contract_id UUID REFERENCES contracts(id),
		beneficiary VARCHAR(255) NOT NULL,
		amount NUMERIC(18,2) NOT NULL,
		kind VARCHAR(32) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_partner_tx_billboard ON partner_transactions (billboard_id, created_at);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
