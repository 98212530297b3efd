package main

import (
	"log"

	"github.com/patric-chuzhbe/openchat/internal/app"
	"github.com/patric-chuzhbe/openchat/internal/logger"
)

func main() {
	theApp, err := app.New()
	if err != nil {
		log.Fatalln("application initialization error:", err)
	}
	defer theApp.Close()

	if err := theApp.Run(); err != nil {
		logger.Log.Errorln("application run error:", err)
	}
}
