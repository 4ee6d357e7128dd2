package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

// apiKeyCommands returns the Cobra command group for managing API keys from
// the terminal, without going through the HTTP surface.
func apiKeyCommands(m *moneyapiInstance) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "api-keys",
		Short: "manage api keys",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "generate",
		Short: "generate a new api key",
		Run: func(cmd *cobra.Command, args []string) {
			key, err := m.service.CreateAPIKey(context.Background())
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(key.Key)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "list existing api keys",
		Run: func(cmd *cobra.Command, args []string) {
			keys, err := m.service.ListAPIKeys(context.Background())
			if err != nil {
				log.Fatal(err)
			}
			for _, k := range keys {
				fmt.Printf("%d\t%s\t%s\n", k.ID, k.Key, k.CreatedAt.Format("2006-01-02 15:04:05"))
			}
		},
	})

	return cmd
}
