package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/saeidalz13/armada-backend/api"
	"github.com/saeidalz13/armada-backend/db"
	"github.com/saeidalz13/armada-backend/db/sqlc"
	mb "github.com/saeidalz13/armada-backend/models/battleship"
	mc "github.com/saeidalz13/armada-backend/models/connection"
)

func main() {
	if os.Getenv("STAGE") != "prod" {
		if err := godotenv.Load(".env"); err != nil {
			panic(err)
		}
	}
	stage := os.Getenv("STAGE")
	if stage != "dev" && stage != "prod" {
		panic("stage must be either dev or prod")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	// Analytics are optional; without DATABASE_URL the server
	// runs the game engine standalone.
	var querier sqlc.Querier
	if psqlUrl := os.Getenv("DATABASE_URL"); psqlUrl != "" {
		querier = sqlc.New(db.MustConnectToDb(psqlUrl))
	}

	sessionManager := mc.NewArmadaSessionManager()
	go sessionManager.CleanupPeriodically()

	matchManager := mb.NewArmadaMatchManager()

	rp := api.NewRequestProcessor(sessionManager, matchManager, querier)

	mux := http.NewServeMux()
	mux.Handle("GET /armada", rp)

	log.Printf("Listening to port %s\n", port)
	log.Fatalln(http.ListenAndServe("0.0.0.0:"+port, mux))
}
