package main

import (
	"log"

	"imagemaker-server/confs"
	"imagemaker-server/db"
	"imagemaker-server/server"
)

func main() {
	// load config
	err := confs.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// connect to database Postgres
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			log.Printf("Error closing database connection: %v", err)
		}
	}()

	// run server
	srv := server.NewServer(database)
	srv.Start()
}
