package database

import (
	"fmt"
	"log"
	"os"

	"github.com/unishare/api/model"
	"github.com/unishare/api/utils/auth"
	"gorm.io/gorm"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAll runs all seed functions
func (s *Seeder) SeedAll() error {
	log.Println("🌱 Starting database seeding...")

	// Run seeds in order (respecting foreign key constraints)
	if err := s.SeedAdminUser(); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := s.SeedSampleResources(); err != nil {
		return fmt.Errorf("failed to seed sample resources: %w", err)
	}

	log.Println("✅ Database seeding completed successfully!")
	return nil
}

// SeedAdminUser creates the default admin user
func (s *Seeder) SeedAdminUser() error {
	// Check if admin already exists
	var count int64
	if err := s.db.Model(&model.User{}).Where("role = ?", model.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Admin user already exists, skipping...")
		return nil
	}

	// Get admin credentials from environment variables
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminEmail == "" || adminPassword == "" {
		log.Println("⚠️  ADMIN_EMAIL and ADMIN_PASSWORD environment variables not set, skipping admin user creation")
		return nil
	}

	passwordHash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &model.User{
		FullName:     "System Administrator",
		Email:        adminEmail,
		PasswordHash: passwordHash,
		Role:         model.RoleAdmin,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Created admin user: %s\n", admin.Email)
	return nil
}

// SeedSampleResources creates a few catalog entries so a fresh
// environment has something to browse
func (s *Seeder) SeedSampleResources() error {
	var count int64
	if err := s.db.Model(&model.Resource{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Resources already exist, skipping...")
		return nil
	}

	course := "Cálculo I"
	cycle := "2026-1"
	teacher := "R. Paredes"
	course2 := "Programación Avanzada"

	resources := []model.Resource{
		{
			Title:       "Apuntes de límites y continuidad",
			Description: "Resumen de la primera unidad con ejercicios resueltos",
			Course:      &course,
			Cycle:       &cycle,
			Teacher:     &teacher,
			FileURL:     "/uploads/sample-limites.pdf",
			FileType:    "application/pdf",
		},
		{
			Title:       "Guía de estructuras de datos",
			Description: "Listas, pilas y colas con ejemplos en pseudocódigo",
			Course:      &course2,
			Cycle:       &cycle,
			FileURL:     "/uploads/sample-estructuras.pdf",
			FileType:    "application/pdf",
		},
		{
			Title:       "Plantilla de informe de laboratorio",
			Description: "Formato sugerido para los informes del curso",
			FileURL:     "/uploads/sample-plantilla.pdf",
			FileType:    "application/pdf",
		},
	}

	if err := s.db.Create(&resources).Error; err != nil {
		return err
	}

	log.Printf("✅ Created %d sample resources\n", len(resources))
	return nil
}

// RunSeeds is a convenience function to run all seeds
func RunSeeds(db *gorm.DB) error {
	seeder := NewSeeder(db)
	return seeder.SeedAll()
}
