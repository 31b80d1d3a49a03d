package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"herdbook-backend/internal/config"
	"herdbook-backend/internal/database"
	"herdbook-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type OrganizationData struct {
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name"`
	Domain      string `yaml:"domain"`
	Description string `yaml:"description,omitempty"`
}

type AnimalData struct {
	Name             string `yaml:"name"`
	OrganizationName string `yaml:"organization_name"`
	Species          string `yaml:"species"`
	Sex              string `yaml:"sex"`
	BreedText        string `yaml:"breed_text,omitempty"`
	TagNumber        string `yaml:"tag_number,omitempty"`
	BirthDate        string `yaml:"birth_date,omitempty"`
	Notes            string `yaml:"notes,omitempty"`
}

type ProgramData struct {
	Name             string `yaml:"name"`
	OrganizationName string `yaml:"organization_name"`
	Species          string `yaml:"species"`
	Description      string `yaml:"description,omitempty"`
}

// File structures
type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type AnimalsFile struct {
	Animals []AnimalData `yaml:"animals"`
}

type ProgramsFile struct {
	Programs []ProgramData `yaml:"programs"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	organizations, err := loadOrganizations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	animals, err := loadAnimals(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load animals: %w", err)
	}

	programs, err := loadPrograms(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load programs: %w", err)
	}

	// Create organizations first
	orgMap := make(map[string]*models.Organization)
	orgCreated := 0
	for _, orgData := range organizations {
		org, created, err := createOrganization(db, orgData)
		if err != nil {
			return fmt.Errorf("failed to create organization %s: %w", orgData.Name, err)
		}
		orgMap[orgData.Name] = org
		if created {
			orgCreated++
		}
	}
	log.Printf("Organizations: %d created, %d total", orgCreated, len(organizations))

	// Create animals
	animalCreated := 0
	for _, animalData := range animals {
		_, created, err := createAnimal(db, animalData, orgMap)
		if err != nil {
			return fmt.Errorf("failed to create animal %s: %w", animalData.Name, err)
		}
		if created {
			animalCreated++
		}
	}
	log.Printf("Animals: %d created, %d total", animalCreated, len(animals))

	// Create programs
	programCreated := 0
	for _, programData := range programs {
		_, created, err := createProgram(db, programData, orgMap)
		if err != nil {
			return fmt.Errorf("failed to create program %s: %w", programData.Name, err)
		}
		if created {
			programCreated++
		}
	}
	log.Printf("Programs: %d created, %d total", programCreated, len(programs))

	return nil
}

func loadOrganizations(dataDir string) ([]OrganizationData, error) {
	var file OrganizationsFile
	if err := readYAMLFile(filepath.Join(dataDir, "organizations.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Organizations, nil
}

func loadAnimals(dataDir string) ([]AnimalData, error) {
	var file AnimalsFile
	if err := readYAMLFile(filepath.Join(dataDir, "animals.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Animals, nil
}

func loadPrograms(dataDir string) ([]ProgramData, error) {
	var file ProgramsFile
	if err := readYAMLFile(filepath.Join(dataDir, "programs.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Programs, nil
}

func readYAMLFile(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Skipping %s: file not found", path)
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, target)
}

func createOrganization(db *gorm.DB, data OrganizationData) (*models.Organization, bool, error) {
	var existing models.Organization
	err := db.Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	org := &models.Organization{
		Name:        data.Name,
		DisplayName: data.DisplayName,
		Domain:      data.Domain,
		Description: data.Description,
	}
	if err := db.Create(org).Error; err != nil {
		return nil, false, err
	}
	return org, true, nil
}

func createAnimal(db *gorm.DB, data AnimalData, orgMap map[string]*models.Organization) (*models.Animal, bool, error) {
	org, ok := orgMap[data.OrganizationName]
	if !ok {
		return nil, false, fmt.Errorf("unknown organization %q", data.OrganizationName)
	}

	species, ok := models.ParseSpecies(data.Species)
	if !ok {
		return nil, false, fmt.Errorf("unknown species %q", data.Species)
	}
	sex := models.Sex(data.Sex)
	if !sex.IsValid() {
		return nil, false, fmt.Errorf("invalid sex %q", data.Sex)
	}

	var existing models.Animal
	err := db.Where("organization_id = ? AND name = ?", org.ID, data.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	animal := &models.Animal{
		OrganizationID: org.ID,
		Name:           data.Name,
		Species:        species,
		Sex:            sex,
		BreedText:      data.BreedText,
		TagNumber:      data.TagNumber,
		Status:         models.AnimalStatusActive,
		Notes:          data.Notes,
	}
	if data.BirthDate != "" {
		birthDate, err := time.Parse("2006-01-02", data.BirthDate)
		if err != nil {
			return nil, false, fmt.Errorf("invalid birth_date %q: %w", data.BirthDate, err)
		}
		animal.BirthDate = &birthDate
	}
	if err := db.Create(animal).Error; err != nil {
		return nil, false, err
	}
	return animal, true, nil
}

func createProgram(db *gorm.DB, data ProgramData, orgMap map[string]*models.Organization) (*models.BreedingProgram, bool, error) {
	org, ok := orgMap[data.OrganizationName]
	if !ok {
		return nil, false, fmt.Errorf("unknown organization %q", data.OrganizationName)
	}

	species, ok := models.ParseSpecies(data.Species)
	if !ok {
		return nil, false, fmt.Errorf("unknown species %q", data.Species)
	}

	var existing models.BreedingProgram
	err := db.Where("organization_id = ? AND name = ?", org.ID, data.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	program := &models.BreedingProgram{
		OrganizationID: org.ID,
		Name:           data.Name,
		Species:        species,
		Description:    data.Description,
	}
	if err := db.Create(program).Error; err != nil {
		return nil, false, err
	}
	return program, true, nil
}
