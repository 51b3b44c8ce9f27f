package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"interviewhub/demo"
)

func main() {
	var (
		baseURL string
		timeout time.Duration
		raw     bool
	)

	cmd := &cobra.Command{
		Use:          "demo",
		Short:        "Send the sample SOC analyst answer to the evaluation API and print the result",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			client := demo.NewClient(baseURL, &http.Client{Timeout: timeout})
			result := client.Evaluate(ctx)

			if raw {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(result.Response); err != nil {
					return err
				}
			} else if err := demo.RenderText(cmd.OutOrStdout(), result); err != nil {
				return err
			}

			if !result.Response.Success {
				return fmt.Errorf("evaluation failed")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&baseURL, "url", "http://127.0.0.1:8080", "base URL of the evaluation service")
	cmd.Flags().DurationVar(&timeout, "timeout", 35*time.Second, "overall request timeout")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the JSON response instead of the formatted view")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
