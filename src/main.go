package main

import (
	"log"

	"ratgol/src/engine"
	"ratgol/src/view"
)

func main() {
	//the terminal must be usable before any simulation state is created
	ui, err := view.NewConsoleUI()
	if err != nil {
		log.Fatalf("failed to initialize the terminal: %v", err)
	}

	e := engine.New(engine.DefaultOptions, ui, ui)
	ui.Attach(e)

	go e.Run()

	//Start restores the terminal before returning, also on error
	err = ui.Start()
	e.Close()
	if err != nil {
		log.Fatalf("terminal main loop failed: %v", err)
	}
}
