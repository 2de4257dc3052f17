package seeders

import (
	"log"

	"gorm.io/gorm"
)

// MainSeeder coordinates all seeding operations
type MainSeeder struct {
	db *gorm.DB
}

// NewMainSeeder creates a new main seeder
func NewMainSeeder(db *gorm.DB) *MainSeeder {
	return &MainSeeder{db: db}
}

// SeedAll runs all seeders in the correct order
func (s *MainSeeder) SeedAll() error {
	adminSeeder := NewAdminSeeder(s.db)
	if err := adminSeeder.SeedAdmin(); err != nil {
		log.Printf("Admin seeding failed: %v", err)
		return err
	}

	courseSeeder := NewCourseSeeder(s.db)
	if err := courseSeeder.SeedDemoCourse(); err != nil {
		log.Printf("Course seeding failed: %v", err)
		return err
	}

	academySeeder := NewAcademySeeder(s.db)
	if err := academySeeder.SeedDemoCohort(); err != nil {
		log.Printf("Academy seeding failed: %v", err)
		return err
	}

	return nil
}

// SeedAdminOnly seeds only the admin user
func (s *MainSeeder) SeedAdminOnly() error {
	return NewAdminSeeder(s.db).SeedAdmin()
}

// SeedDemoOnly seeds only the demo course
func (s *MainSeeder) SeedDemoOnly() error {
	return NewCourseSeeder(s.db).SeedDemoCourse()
}
