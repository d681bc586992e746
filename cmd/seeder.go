package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/frahmantamala/employee-directory/internal/auth"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample roles, departments and employees for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := sqlx.Connect("pgx", cfg.Database.Source)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		hash, err := auth.NewBcryptHasher(cfg.Security.BCryptCost).Hash(cfg.Security.DefaultEmployeePassword)
		if err != nil {
			log.Fatalf("failed to hash default password: %v", err)
		}

		if err := seedDirectory(cmd.Context(), db, hash, clearData); err != nil {
			log.Fatal(err)
		}
	},
}

type seedRecord struct {
	Name        string
	Description string
}

type seedEmployee struct {
	FirstName  string
	LastName   string
	Phone      string
	Address    string
	Email      string
	Role       string
	Department string
}

var (
	seedRoles = []seedRecord{
		{"Admin", "Administrator role"},
		{"Employee", "Employee role"},
		{"Manager", "Manager role"},
	}
	seedDepartments = []seedRecord{
		{"HR", "Human Resources Department"},
		{"IT", "Information Technology Department"},
	}
	seedEmployees = []seedEmployee{
		{"John", "Doe", "1234567890", "123 Admin St", "admin@example.com", "Admin", "IT"},
		{"Jane", "Doe", "0987654321", "456 User Ave", "user@example.com", "Employee", "HR"},
		{"Frank", "Thomas", "1234567890", "123 Admin St", "manager@example.com", "Manager", "HR"},
	}
)

// seedDirectory inserts the sample rows that are not already present. With
// clear set, the directory tables are truncated first.
func seedDirectory(ctx context.Context, db *sqlx.DB, passwordHash string, clear bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if clear {
		if _, err := tx.ExecContext(ctx, "TRUNCATE employees, departments, roles RESTART IDENTITY CASCADE"); err != nil {
			return fmt.Errorf("clear directory tables: %w", err)
		}
		fmt.Println("Cleared employees, departments and roles")
	}

	roleIDs := make(map[string]int64, len(seedRoles))
	for _, r := range seedRoles {
		id, err := ensureNamed(ctx, tx, "roles", r)
		if err != nil {
			return err
		}
		roleIDs[r.Name] = id
	}

	departmentIDs := make(map[string]int64, len(seedDepartments))
	for _, d := range seedDepartments {
		id, err := ensureNamed(ctx, tx, "departments", d)
		if err != nil {
			return err
		}
		departmentIDs[d.Name] = id
	}

	for _, e := range seedEmployees {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO employees (first_name, last_name, phone, address, email, password_hash, status, department_id, role_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, true, $7, $8, now(), now())
			ON CONFLICT (email) DO NOTHING`,
			e.FirstName, e.LastName, e.Phone, e.Address, e.Email, passwordHash, departmentIDs[e.Department], roleIDs[e.Role])
		if err != nil {
			return fmt.Errorf("failed to insert employee %s: %w", e.Email, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			fmt.Printf("Seeded employee: %s (%s, %s)\n", e.Email, e.Role, e.Department)
		} else {
			fmt.Printf("employee %s already exists; skipping\n", e.Email)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}
	fmt.Println("Directory seeded successfully")
	return nil
}

// ensureNamed inserts a role or department by unique name and returns its id
// whether it was inserted now or already existed.
func ensureNamed(ctx context.Context, tx *sqlx.Tx, table string, rec seedRecord) (int64, error) {
	insert := fmt.Sprintf(`INSERT INTO %s (name, description, created_at, updated_at)
		VALUES ($1, $2, now(), now()) ON CONFLICT (name) DO NOTHING`, table)
	if _, err := tx.ExecContext(ctx, insert, rec.Name, rec.Description); err != nil {
		return 0, fmt.Errorf("failed to insert %s %s: %w", table, rec.Name, err)
	}

	var id int64
	if err := tx.GetContext(ctx, &id, fmt.Sprintf("SELECT id FROM %s WHERE name = $1", table), rec.Name); err != nil {
		return 0, fmt.Errorf("%s %s not found after insert: %w", table, rec.Name, err)
	}
	return id, nil
}
