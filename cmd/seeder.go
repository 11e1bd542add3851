package cmd

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/gestionat/hr-management/internal/auth"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedEmployee struct {
	DNI        string
	Name       string
	Surname    string
	Email      string
	Department auth.Role
	Username   string
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		db, err := initGorm(sqlDB)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			for _, table := range []string{"detours", "tasks", "vacation_requests", "projects", "proposals", "employees", "user_credentials", "people"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear table %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), cfg.Security.BCryptCost)

		staff := []seedEmployee{
			{"11111111A", "Marta", "Serrano", "marta@gestionat.example", auth.RoleHR, "mserrano"},
			{"22222222B", "Jorge", "Campos", "jorge@gestionat.example", auth.RoleCommercial, "jcampos"},
			{"33333333C", "Lucia", "Prieto", "lucia@gestionat.example", auth.RoleTechnical, "lprieto"},
			{"44444444D", "Andres", "Molina", "andres@gestionat.example", auth.RoleDevelopment, "amolina"},
		}

		for _, s := range staff {
			var exists int
			if err := db.Raw("SELECT 1 FROM people WHERE dni = ?", s.DNI).Row().Scan(&exists); err == nil {
				fmt.Printf("employee %s already exists, skipping\n", s.DNI)
				continue
			}

			err := db.Transaction(func(tx *gorm.DB) error {
				if err := tx.Exec("INSERT INTO people (dni, name, surname, email, birthdate) VALUES (?, ?, ?, ?, '1990-01-01')", s.DNI, s.Name, s.Surname, s.Email).Error; err != nil {
					return err
				}
				if err := tx.Exec("INSERT INTO user_credentials (username, password_hash) VALUES (?, ?)", s.Username, string(hash)).Error; err != nil {
					return err
				}
				return tx.Exec("INSERT INTO employees (dni, department, hire_date, max_vacation_days, username) VALUES (?, ?, now(), 22, ?)", s.DNI, string(s.Department), s.Username).Error
			})
			if err != nil {
				log.Fatalf("failed to seed employee %s: %v", s.DNI, err)
			}
			fmt.Printf("Seeded employee %s (%s / %s)\n", s.DNI, s.Username, s.Department)
		}

		proposals := []struct {
			Name       string
			Commercial string
			Technical  string
		}{
			{"intranet-revamp", "22222222B", "33333333C"},
			{"billing-platform", "22222222B", "33333333C"},
		}

		for _, p := range proposals {
			filesDir := filepath.Join(cfg.Storage.ProposalFilesRoot, p.Name)
			var exists int
			if err := db.Raw("SELECT 1 FROM proposals WHERE files_dir = ?", filesDir).Row().Scan(&exists); err == nil {
				fmt.Printf("proposal %s already exists, skipping\n", p.Name)
				continue
			}

			if err := db.Exec("INSERT INTO proposals (state, files_dir, commercial_employee_dni, technical_employee_dni) VALUES ('Pendiente', ?, ?, ?)", filesDir, p.Commercial, p.Technical).Error; err != nil {
				log.Fatalf("failed to seed proposal %s: %v", p.Name, err)
			}
			fmt.Printf("Seeded proposal %s\n", p.Name)
		}

		fmt.Println("Seeding finished; every account logs in with password:", password)
	},
}
