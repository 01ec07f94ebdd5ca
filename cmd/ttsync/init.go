package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/timetable-sync/internal/application/handlers"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a ttsync project",
		Long:  "Creates a .ttsync directory with a default configuration.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := projectDir()
	if err != nil {
		return err
	}

	result, err := handlers.NewInitHandler().Handle(dir)
	if err != nil {
		return err
	}

	fmt.Printf("Created %s\n", result.ConfigPath)
	fmt.Printf("Backend: %s\n", result.BaseURL)
	fmt.Printf("Snapshot storage: %s\n", result.StorageDriver)
	fmt.Println("ttsync initialized successfully!")
	return nil
}
