package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/prefeitura-rio/app-cadastro/internal/config"
	"github.com/prefeitura-rio/app-cadastro/internal/logging"
	"github.com/prefeitura-rio/app-cadastro/internal/models"
	"github.com/prefeitura-rio/app-cadastro/internal/services"
)

func strPtr(s string) *string { return &s }

// SeedPessoas contains sample records for local development
var SeedPessoas = []models.Pessoa{
	{
		Nome:           "Maria da Silva",
		Sexo:           strPtr("Feminino"),
		Email:          strPtr("maria.silva@example.com"),
		DataNascimento: time.Date(1985, 3, 12, 0, 0, 0, 0, time.UTC),
		Naturalidade:   strPtr("Rio de Janeiro"),
		Nacionalidade:  strPtr("Brasileira"),
		CPF:            "111.444.777-35",
	},
	{
		Nome:           "João Pereira",
		Sexo:           strPtr("Masculino"),
		Email:          strPtr("joao.pereira@example.com"),
		DataNascimento: time.Date(1990, 7, 1, 0, 0, 0, 0, time.UTC),
		Naturalidade:   strPtr("Niterói"),
		Nacionalidade:  strPtr("Brasileira"),
		CPF:            "529.982.247-25",
	},
	{
		Nome:           "Ana Souza",
		Email:          strPtr("ana.souza@example.com"),
		DataNascimento: time.Date(2001, 11, 23, 0, 0, 0, 0, time.UTC),
		CPF:            "390.533.447-05",
	},
}

func main() {
	fmt.Println("🌱 Seeding pessoas...")

	if err := logging.InitLogger(); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := config.ConnectMongo(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	collection := db.Collection(cfg.PessoaCollection)

	// Check if records already exist
	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to count existing pessoas: %v", err)
	}

	if count > 0 {
		fmt.Printf("⚠️  Found %d existing pessoas. Do you want to replace them? (y/N): ", count)
		var response string
		_, err := fmt.Scanln(&response)
		if err != nil {
			fmt.Println("❌ Error reading input")
			return
		}
		if response != "y" && response != "Y" {
			fmt.Println("❌ Seeding cancelled")
			return
		}

		result, err := collection.DeleteMany(ctx, bson.M{})
		if err != nil {
			log.Fatalf("Failed to delete existing pessoas: %v", err)
		}
		fmt.Printf("🗑️  Deleted %d existing pessoas\n", result.DeletedCount)
	}

	// Insert through the service so ids come from the counter and the
	// CPF digits get normalized the same way the API does it.
	service := services.NewPessoaService(db, cfg, logging.Logger.Named("seed"))

	inserted := 0
	for i := range SeedPessoas {
		p := SeedPessoas[i]
		if err := service.Create(ctx, &p); err != nil {
			log.Fatalf("Failed to insert pessoa %q: %v", p.Nome, err)
		}
		fmt.Printf("  ✅ %d: %s\n", p.ID, p.Nome)
		inserted++
	}

	fmt.Printf("🎉 Seeded %d pessoas\n", inserted)
}
