package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			phone VARCHAR(20),
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT UNIQUE NOT NULL,
			description TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS user_roles (
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			role_id UUID NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
			PRIMARY KEY (user_id, role_id)
		)`,

		`CREATE TABLE IF NOT EXISTS academic_years (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT UNIQUE NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			is_current BOOLEAN DEFAULT false,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS classes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT UNIQUE NOT NULL,
			level TEXT NOT NULL,
			class_group VARCHAR(20) NOT NULL,
			category VARCHAR(20) NOT NULL,
			teacher_id UUID REFERENCES users(id),
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_code TEXT UNIQUE NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			gender VARCHAR(10),
			date_of_birth DATE,
			class_id UUID REFERENCES classes(id),
			parent_name TEXT,
			parent_phone VARCHAR(20),
			uses_uniform BOOLEAN DEFAULT false,
			uses_transport BOOLEAN DEFAULT false,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,

		`CREATE TABLE IF NOT EXISTS payment_configurations (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			academic_year_id UUID NOT NULL REFERENCES academic_years(id),
			amounts JSONB NOT NULL DEFAULT '{}',
			start_month INT NOT NULL,
			end_month INT NOT NULL,
			grace_period_days INT NOT NULL DEFAULT 0,
			discount JSONB NOT NULL DEFAULT '{}',
			uniform_price NUMERIC NOT NULL DEFAULT 0,
			transport_annual NUMERIC NOT NULL DEFAULT 0,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now()
		)`,

		`CREATE TABLE IF NOT EXISTS student_payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			academic_year_id UUID NOT NULL REFERENCES academic_years(id),
			class_group VARCHAR(20) NOT NULL,
			grade_category VARCHAR(20) NOT NULL,
			overall_status VARCHAR(20) NOT NULL DEFAULT 'pending',
			total_grand_total NUMERIC NOT NULL DEFAULT 0,
			paid_grand_total NUMERIC NOT NULL DEFAULT 0,
			doc JSONB NOT NULL,
			created_at TIMESTAMPTZ DEFAULT now(),
			updated_at TIMESTAMPTZ DEFAULT now(),
			UNIQUE (student_id, academic_year_id)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_student_payments_year_status
			ON student_payments (academic_year_id, overall_status)`,

		`CREATE TABLE IF NOT EXISTS receipt_sequences (
			year_name TEXT PRIMARY KEY,
			last_value BIGINT NOT NULL DEFAULT 0
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration statement failed: %v", err)
			return err
		}
	}

	if err := addTransportAnnualColumn(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// addTransportAnnualColumn backfills installations created before the
// transportation tariff moved into the configuration row.
func addTransportAnnualColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'payment_configurations'
				AND column_name = 'transport_annual'
			) THEN
				ALTER TABLE payment_configurations ADD COLUMN transport_annual NUMERIC NOT NULL DEFAULT 0;
				RAISE NOTICE 'Added transport_annual column to payment_configurations';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for transport_annual column: %v", err)
		return err
	}
	return nil
}
