package main

import (
	"context"
	"errors"
	"log"
	"os"

	"gorm.io/gorm"

	"github.com/thspin/proyecto-1/internal/auth"
	"github.com/thspin/proyecto-1/internal/config"
	"github.com/thspin/proyecto-1/internal/db"
	"github.com/thspin/proyecto-1/internal/model"
	"github.com/thspin/proyecto-1/internal/repository"
)

var defaultCategories = []model.Category{
	{Nombre: "Sueldo", Tipo: model.MovementIngreso},
	{Nombre: "Otros ingresos", Tipo: model.MovementIngreso},
	{Nombre: "Supermercado", Tipo: model.MovementEgreso},
	{Nombre: "Transporte", Tipo: model.MovementEgreso},
	{Nombre: "Servicios", Tipo: model.MovementEgreso},
	{Nombre: "Ocio", Tipo: model.MovementEgreso},
	{Nombre: "Otros gastos", Tipo: model.MovementEgreso},
}

// Seed bootstraps an admin user and the default category set. Safe to
// run repeatedly, existing rows are left alone.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	if err := seedAdmin(ctx, repository.NewUserRepository(gormDB)); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	if err := seedCategories(ctx, repository.NewCategoryRepository(gormDB)); err != nil {
		log.Fatalf("Failed to seed categories: %v", err)
	}

	log.Println("Seed completed")
}

func seedAdmin(ctx context.Context, users repository.UserRepository) error {
	email := getEnv("SEED_ADMIN_EMAIL", "admin@example.com")
	password := getEnv("SEED_ADMIN_PASSWORD", "admin123")
	name := getEnv("SEED_ADMIN_NAME", "Administrador")

	if _, err := users.FindByEmail(ctx, email); err == nil {
		log.Printf("Admin user %s already exists, skipping", email)
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &model.User{
		Nombre:       name,
		Email:        email,
		PasswordHash: hash,
		Rol:          model.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("Created admin user %s (id=%d)", email, admin.ID)
	return nil
}

func seedCategories(ctx context.Context, categories repository.CategoryRepository) error {
	existing, err := categories.List(ctx, repository.Page{Skip: 0, Limit: 1000})
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(existing))
	for _, c := range existing {
		seen[c.Nombre] = true
	}

	created := 0
	for _, c := range defaultCategories {
		if seen[c.Nombre] {
			continue
		}
		category := c
		if err := categories.Create(ctx, &category); err != nil {
			return err
		}
		created++
	}
	log.Printf("Created %d categories (%d already present)", created, len(defaultCategories)-created)
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
