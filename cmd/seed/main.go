package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/trenchhq/trench-api/config"
	"github.com/trenchhq/trench-api/pkg/helpers"
)

// Seeds a bootstrap admin plus one college and department so a fresh
// environment has something to log in with.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	var collegeID string
	err = db.QueryRow(`
		INSERT INTO colleges (id, name, address, email)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET updated_at = now()
		RETURNING id
	`, "clg_seed", "Trench Institute of Technology", "1 College Road", "office@trench.edu").Scan(&collegeID)
	if err != nil {
		log.Fatalf("failed to seed college: %v", err)
	}

	var departmentID string
	err = db.QueryRow(`
		INSERT INTO departments (id, name, college_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET updated_at = now()
		RETURNING id
	`, "dept_seed", "Computer Engineering", collegeID).Scan(&departmentID)
	if err != nil {
		log.Fatalf("failed to seed department: %v", err)
	}
	fmt.Printf("seeded college=%s department=%s\n", collegeID, departmentID)

	email := "admin@trench.local"
	password := "admin123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (id, email, name, password_hash, role)
		VALUES ($1, $2, $3, $4, 'ADMIN')
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, helpers.NewID("user"), email, "Bootstrap Admin", hash).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	if _, err := db.Exec(`
		INSERT INTO admins (user_id, department_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`, userID, departmentID); err != nil {
		log.Fatalf("failed to seed admin profile: %v", err)
	}
	fmt.Printf("seeded admin: id=%s email=%s password=%s\n", userID, email, password)
}
