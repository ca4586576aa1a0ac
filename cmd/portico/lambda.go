package main

import (
	"log/slog"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spf13/cobra"

	"github.com/porticoapp/portico/awslambda"
	"github.com/porticoapp/portico/config"
)

var lambdaCmd = &cobra.Command{
	Use:   "lambda",
	Short: "Run as an AWS Lambda function",
	Long: `Run as the entry point of an AWS Lambda function invoked through an
API Gateway HTTP API. The same router as serve mode handles every event.`,
	RunE: runLambda,
}

func init() {
	rootCmd.AddCommand(lambdaCmd)
}

func runLambda(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return err
	}

	router, cleanup, err := buildRouter(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	handler, err := awslambda.New(router)
	if err != nil {
		return err
	}

	slog.Info("starting lambda runtime", "static", cfg.Static.Path)
	lambda.StartWithOptions(handler.Handle, lambda.WithContext(cmd.Context()))

	return nil
}
