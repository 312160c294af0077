package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/zerovolts/minesweeper/server"
)

func main() {
	// .env があれば読み込む（無くても起動できる）
	_ = godotenv.Load()

	log := logrus.New()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	mux := http.NewServeMux()
	server.New().Register(mux)

	log.WithField("port", port).Info("minesweeper api server starting")
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Fatal(err)
	}
}
