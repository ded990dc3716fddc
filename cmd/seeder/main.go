package main

import (
	"context"
	"flag"
	"log"
	"time"

	"food-ordering/config"
	"food-ordering/repository"
	"food-ordering/seed"
	"food-ordering/utils"
)

func main() {
	destroy := flag.Bool("d", false, "destroy data instead of importing it")
	withUsers := flag.Bool("users", false, "also replace users with the sample users")
	flag.Parse()

	cfg := config.Load()

	client := utils.ConnectDB(cfg.MongoURI)
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()
	db := client.Database(cfg.MongoDB)

	seeder := &seed.Seeder{
		Restaurants: repository.NewRestaurantRepository(db),
		Users:       repository.NewUserRepository(db),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if *destroy {
		if err := seeder.Destroy(ctx, *withUsers); err != nil {
			log.Fatalf("Error: %v", err)
		}
		log.Println("Data Destroyed!")
		return
	}

	if err := seeder.Import(ctx, *withUsers); err != nil {
		log.Fatalf("Error: %v", err)
	}
	log.Println("Data Imported!")
}
